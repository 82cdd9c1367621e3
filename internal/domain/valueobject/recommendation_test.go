package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/domain/valueobject"
)

func TestRecommendationFromAssessment(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		flagCount int
		want      valueobject.Recommendation
	}{
		{"score at critical threshold", 90, 0, valueobject.RecommendationCritical},
		{"multiple flags force critical regardless of score", 30, 2, valueobject.RecommendationCritical},
		{"high tier above 75", 76, 1, valueobject.RecommendationHigh},
		{"score 89 with one flag stays high", 89, 1, valueobject.RecommendationHigh},
		{"moderate tier above 40", 41, 1, valueobject.RecommendationModerate},
		{"score 75 falls to moderate", 75, 0, valueobject.RecommendationModerate},
		{"score 40 is still low", 40, 1, valueobject.RecommendationLow},
		{"safe baseline is low", 10, 0, valueobject.RecommendationLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := valueobject.RecommendationFromAssessment(tt.score, tt.flagCount)
			assert.True(t, got.Equal(tt.want), "got %q", got.String())
		})
	}
}

func TestRecommendationFromString(t *testing.T) {
	for _, rec := range []valueobject.Recommendation{
		valueobject.RecommendationCritical,
		valueobject.RecommendationHigh,
		valueobject.RecommendationModerate,
		valueobject.RecommendationLow,
	} {
		got, err := valueobject.RecommendationFromString(rec.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(rec))
	}

	_, err := valueobject.RecommendationFromString("nonsense")
	assert.Error(t, err)
}

func TestRecommendationTier(t *testing.T) {
	assert.Equal(t, "critical", valueobject.RecommendationCritical.Tier())
	assert.Equal(t, "high", valueobject.RecommendationHigh.Tier())
	assert.Equal(t, "moderate", valueobject.RecommendationModerate.Tier())
	assert.Equal(t, "low", valueobject.RecommendationLow.Tier())
	assert.Equal(t, "unknown", valueobject.Recommendation{}.Tier())
}

func TestRecommendationIsCritical(t *testing.T) {
	assert.True(t, valueobject.RecommendationCritical.IsCritical())
	assert.False(t, valueobject.RecommendationLow.IsCritical())
}

func TestRecommendationIsZero(t *testing.T) {
	assert.True(t, valueobject.Recommendation{}.IsZero())
	assert.False(t, valueobject.RecommendationLow.IsZero())
}
