package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/domain/service"
	"github.com/phishguard/phishguard/internal/domain/valueobject"
)

// stubRand returns a fixed sequence of values so scores are deterministic.
type stubRand struct {
	values []int
	idx    int
}

func (s *stubRand) IntN(n int) int {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v % n
}

func newScorer(values ...int) *service.URLScorer {
	if len(values) == 0 {
		values = []int{0}
	}
	return service.NewURLScorerWithRand(&stubRand{values: values})
}

func TestURLScorer_PhishingDemoURL(t *testing.T) {
	scorer := newScorer(3)

	output := scorer.Score("http://secure-login-bank.com/update")

	// Keywords login 15, secure 10, update 10, bank 10 = 45; http:// 25;
	// two flags escalate by 20 = 90.
	assert.Equal(t, 90, output.RiskScore)
	require.Len(t, output.Flags, 2)
	assert.Equal(t, "URL Contains Suspicious Keyword", output.Flags[0].Title())
	assert.Contains(t, output.Flags[0].Description(), "'login'")
	assert.True(t, output.Flags[0].Severity().Equal(valueobject.SeverityHigh))
	assert.Equal(t, "No HTTPS Encryption", output.Flags[1].Title())
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationCritical))
	assert.Equal(t, "53/90 Malicious", output.VirusTotal.Score())
	assert.Equal(t, "Verified Severe Phish (Mock)", output.PhishTank.Status())
}

func TestURLScorer_CleanBankURL(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("https://real-bank.com/login")

	// Keywords login 15 + bank 10 = 25; one flag, no escalation.
	assert.Equal(t, 25, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Equal(t, "URL Contains Suspicious Keyword", output.Flags[0].Title())
	assert.Contains(t, output.Flags[0].Description(), "'login'")
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationLow))
	assert.Equal(t, "0/90 Clean", output.VirusTotal.Score())
	assert.Equal(t, "Not a Phish (Mock)", output.PhishTank.Status())
}

func TestURLScorer_EmptyURL(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("")

	// Zero flags: the accumulated score is discarded for a random baseline.
	assert.Empty(t, output.Flags)
	assert.Equal(t, 5, output.RiskScore)
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationLow))
	assert.Equal(t, "0/90 Clean", output.VirusTotal.Score())
}

func TestURLScorer_SafeBaselineRange(t *testing.T) {
	scorer := service.NewURLScorer()

	for i := 0; i < 200; i++ {
		output := scorer.Score("https://example.com")
		assert.Empty(t, output.Flags)
		assert.GreaterOrEqual(t, output.RiskScore, 5)
		assert.LessOrEqual(t, output.RiskScore, 15)
	}
}

func TestURLScorer_KeywordSingleFlagCap(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("https://login-password-verify.example.com")

	// First keyword 15, each further keyword 10 with no additional flag.
	assert.Equal(t, 35, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Equal(t, "URL Contains Suspicious Keyword", output.Flags[0].Title())
}

func TestURLScorer_KeywordMatchingIsCaseInsensitive(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("https://LOGIN.example.com")

	assert.Equal(t, 15, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Contains(t, output.Flags[0].Description(), "'login'")
}

func TestURLScorer_SchemeCheckIsCaseSensitive(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("HTTP://example.com")

	assert.Empty(t, output.Flags)
	assert.GreaterOrEqual(t, output.RiskScore, 5)
	assert.LessOrEqual(t, output.RiskScore, 15)
}

func TestURLScorer_TLDSingleFlagCap(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("https://example.xyz.info")

	// First TLD 20, each further TLD 15 with no additional flag.
	assert.Equal(t, 35, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Equal(t, "Suspicious TLD", output.Flags[0].Title())
	assert.True(t, output.Flags[0].Severity().Equal(valueobject.SeverityMedium))
}

func TestURLScorer_TLDMatchingIsCaseSensitive(t *testing.T) {
	scorer := newScorer(0)

	output := scorer.Score("https://example.XYZ")

	assert.Empty(t, output.Flags)
}

func TestURLScorer_LongURL(t *testing.T) {
	scorer := newScorer(0)

	url := "https://" + strings.Repeat("a", 48) // 56 characters
	output := scorer.Score(url)

	assert.Equal(t, 10, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Equal(t, "Excessively Long URL", output.Flags[0].Title())
	assert.True(t, output.Flags[0].Severity().Equal(valueobject.SeverityLow))
}

func TestURLScorer_LengthCountsCharactersNotBytes(t *testing.T) {
	scorer := newScorer(0)

	// 44 characters but 76 bytes: two-byte Cyrillic letters must not trip
	// the length rule.
	url := "https://" + strings.Repeat("а", 32) + ".com"
	output := scorer.Score(url)

	assert.Empty(t, output.Flags)

	// 56 characters of the same alphabet still do.
	long := "https://" + strings.Repeat("а", 44) + ".com"
	output = scorer.Score(long)

	assert.Equal(t, 10, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.Equal(t, "Excessively Long URL", output.Flags[0].Title())
}

func TestURLScorer_LengthBoundaryIsExclusive(t *testing.T) {
	scorer := newScorer(0)

	url := "https://" + strings.Repeat("a", 47) // exactly 55 characters
	output := scorer.Score(url)

	assert.Empty(t, output.Flags)
}

func TestURLScorer_MultiFlagEscalation(t *testing.T) {
	scorer := newScorer(10)

	output := scorer.Score("http://example.xyz")

	// http:// 25 + TLD 20 = 45, plus 20 for multiple flags = 65.
	assert.Equal(t, 65, output.RiskScore)
	require.Len(t, output.Flags, 2)
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationCritical))
	assert.Equal(t, "60/90 Malicious", output.VirusTotal.Score())
	assert.Equal(t, "Verified Severe Phish (Mock)", output.PhishTank.Status())
}

func TestURLScorer_AllRulesClampTo100(t *testing.T) {
	scorer := newScorer(0)

	url := "http://secure-login-bank-account-update-verify-password.xyz.info.biz.top.loan"
	require.Greater(t, len(url), 55)

	output := scorer.Score(url)

	assert.Equal(t, 100, output.RiskScore)
	require.Len(t, output.Flags, 4)
	assert.Equal(t, "URL Contains Suspicious Keyword", output.Flags[0].Title())
	assert.Equal(t, "No HTTPS Encryption", output.Flags[1].Title())
	assert.Equal(t, "Suspicious TLD", output.Flags[2].Title())
	assert.Equal(t, "Excessively Long URL", output.Flags[3].Title())
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationCritical))
}

func TestURLScorer_SingleFlagAboveModerateThreshold(t *testing.T) {
	scorer := newScorer(5)

	output := scorer.Score("https://login-secure-account-update-verify.example.com")

	// Five keywords: 15 + 4*10 = 55. One flag, so no escalation, but the
	// score alone crosses the moderate tier and the malicious intel branch.
	assert.Equal(t, 55, output.RiskScore)
	require.Len(t, output.Flags, 1)
	assert.True(t, output.Recommendation.Equal(valueobject.RecommendationModerate))
	assert.Equal(t, "55/90 Malicious", output.VirusTotal.Score())
}

func TestURLScorer_ScoreAlwaysInRange(t *testing.T) {
	scorer := service.NewURLScorer()

	urls := []string{
		"",
		"not a url at all",
		"http://secure-login-bank.com/update",
		"https://real-bank.com/login",
		"http://login-secure-account-update-verify-bank-password-trusted.xyz.info.biz.top.loan/really/long/path",
		strings.Repeat("x", 500),
		"ftp://weird-scheme.top",
	}
	for _, url := range urls {
		output := scorer.Score(url)
		assert.GreaterOrEqual(t, output.RiskScore, 0, "url %q", url)
		assert.LessOrEqual(t, output.RiskScore, 100, "url %q", url)
		assert.False(t, output.Recommendation.IsZero())
		assert.False(t, output.VirusTotal.IsZero())
		assert.False(t, output.PhishTank.IsZero())
	}
}
