package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phishguard/phishguard/internal/domain/valueobject"
)

func TestVirusTotalVerdict(t *testing.T) {
	clean := valueobject.CleanVirusTotalVerdict()
	assert.Equal(t, "0/90 Clean", clean.Score())
	assert.Equal(t, "Mock data: No vendors flagged this.", clean.Summary())

	malicious := valueobject.MaliciousVirusTotalVerdict(55)
	assert.Equal(t, "55/90 Malicious", malicious.Score())
	assert.Equal(t, "Mock data: Multiple vendors flagged this as a severe threat.", malicious.Summary())

	assert.True(t, valueobject.VirusTotalVerdict{}.IsZero())
	assert.False(t, clean.IsZero())
}

func TestPhishTankVerdict(t *testing.T) {
	clean := valueobject.CleanPhishTankVerdict()
	assert.Equal(t, "Not a Phish (Mock)", clean.Status())
	assert.Equal(t, "Mock data: This is a legitimate link.", clean.Summary())

	malicious := valueobject.MaliciousPhishTankVerdict()
	assert.Equal(t, "Verified Severe Phish (Mock)", malicious.Status())
	assert.Equal(t, "Mock data: This is a known and dangerous phishing link.", malicious.Summary())

	assert.True(t, valueobject.PhishTankVerdict{}.IsZero())
	assert.False(t, clean.IsZero())
}

func TestFlagEqual(t *testing.T) {
	a := valueobject.NewFlag("Suspicious TLD", "desc", valueobject.SeverityMedium)
	b := valueobject.NewFlag("Suspicious TLD", "desc", valueobject.SeverityMedium)
	c := valueobject.NewFlag("Suspicious TLD", "desc", valueobject.SeverityHigh)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "Suspicious TLD", a.Title())
	assert.Equal(t, "desc", a.Description())
}
