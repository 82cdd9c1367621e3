package valueobject

import "fmt"

// Recommendation is an immutable value object representing the advice tier
// derived from a risk assessment.
type Recommendation struct {
	value string
}

var (
	RecommendationCritical = Recommendation{value: "CRITICAL RISK DETECTED! This site is highly suspicious and likely malicious. DO NOT PROCEED under any circumstances!"}
	RecommendationHigh     = Recommendation{value: "High risk detected. Do not proceed."}
	RecommendationModerate = Recommendation{value: "Moderate risk. Proceed with extreme caution."}
	RecommendationLow      = Recommendation{value: "Low risk detected. Appears to be safe."}
)

// RecommendationFromString reconstructs a Recommendation from its text.
func RecommendationFromString(s string) (Recommendation, error) {
	switch s {
	case RecommendationCritical.value:
		return RecommendationCritical, nil
	case RecommendationHigh.value:
		return RecommendationHigh, nil
	case RecommendationModerate.value:
		return RecommendationModerate, nil
	case RecommendationLow.value:
		return RecommendationLow, nil
	default:
		return Recommendation{}, fmt.Errorf("invalid recommendation: %s", s)
	}
}

// RecommendationFromAssessment derives the tier from a risk score and the
// number of flags. Multiple flags force the critical tier regardless of score.
func RecommendationFromAssessment(score, flagCount int) Recommendation {
	switch {
	case score >= 90 || flagCount > 1:
		return RecommendationCritical
	case score > 75:
		return RecommendationHigh
	case score > 40:
		return RecommendationModerate
	default:
		return RecommendationLow
	}
}

// String returns the full recommendation text.
func (r Recommendation) String() string {
	return r.value
}

// Tier returns the short tier name, suitable for metric labels and logs.
func (r Recommendation) Tier() string {
	switch r.value {
	case RecommendationCritical.value:
		return "critical"
	case RecommendationHigh.value:
		return "high"
	case RecommendationModerate.value:
		return "moderate"
	case RecommendationLow.value:
		return "low"
	default:
		return "unknown"
	}
}

// IsZero returns true if the Recommendation has not been set.
func (r Recommendation) IsZero() bool {
	return r.value == ""
}

// IsCritical returns true if the recommendation is the critical tier.
func (r Recommendation) IsCritical() bool {
	return r.value == RecommendationCritical.value
}

// Equal checks equality with another Recommendation.
func (r Recommendation) Equal(other Recommendation) bool {
	return r.value == other.value
}
