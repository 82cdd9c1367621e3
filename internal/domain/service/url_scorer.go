package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/phishguard/phishguard/internal/domain/valueobject"
)

// suspiciousKeywords are substrings commonly found in phishing URLs,
// scanned in this order against the lower-cased URL.
var suspiciousKeywords = []string{
	"login", "secure", "account", "update", "verify", "bank", "password", "trusted",
}

// suspiciousTLDs are top-level domains frequently associated with abuse,
// matched as case-sensitive substrings anywhere in the URL.
var suspiciousTLDs = []string{".xyz", ".info", ".biz", ".top", ".loan"}

const (
	keywordBaseScore       = 15
	keywordRepeatScore     = 10
	unencryptedSchemeScore = 25
	tldBaseScore           = 20
	tldRepeatScore         = 15
	longURLScore           = 10
	longURLThreshold       = 55
	multiFlagPenalty       = 20
	maxScore               = 100
)

// RandSource yields pseudo-random integers for the safe-case baseline score
// and the synthesized vendor detection count. Injecting it keeps the scorer
// deterministic under test.
type RandSource interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// ScoreOutput contains the full result of scoring a URL.
type ScoreOutput struct {
	RiskScore      int
	Flags          []valueobject.Flag
	Recommendation valueobject.Recommendation
	VirusTotal     valueobject.VirusTotalVerdict
	PhishTank      valueobject.PhishTankVerdict
}

// URLScorer is a domain service that evaluates phishing risk using
// rule-based heuristics. It is pure apart from the injected random source:
// no I/O, no external state, and it never fails.
type URLScorer struct {
	rng RandSource
}

// NewURLScorer creates a URLScorer using the process-wide random source.
func NewURLScorer() *URLScorer {
	return &URLScorer{rng: systemRand{}}
}

// NewURLScorerWithRand creates a URLScorer with an explicit random source.
func NewURLScorerWithRand(rng RandSource) *URLScorer {
	return &URLScorer{rng: rng}
}

// Score evaluates the risk of a URL. Rules run independently in a fixed
// order and accumulate into a single integer score; flags record the first
// match of each rule in detection order. The input is an arbitrary string,
// malformed URLs are scored like any other.
func (s *URLScorer) Score(url string) ScoreOutput {
	score := 0
	flags := make([]valueobject.Flag, 0)

	// Rule 1: suspicious keywords. The first match adds the base score and
	// the only keyword flag; every further match adds a smaller increment
	// with no additional flag.
	lowered := strings.ToLower(url)
	keywordFound := false
	for _, keyword := range suspiciousKeywords {
		if !strings.Contains(lowered, keyword) {
			continue
		}
		if !keywordFound {
			score += keywordBaseScore
			flags = append(flags, valueobject.NewFlag(
				"URL Contains Suspicious Keyword",
				fmt.Sprintf("The URL contains the word '%s', which is common in phishing attacks.", keyword),
				valueobject.SeverityHigh,
			))
			keywordFound = true
		} else {
			score += keywordRepeatScore
		}
	}

	// Rule 2: unencrypted scheme. Case-sensitive prefix check.
	if strings.HasPrefix(url, "http://") {
		score += unencryptedSchemeScore
		flags = append(flags, valueobject.NewFlag(
			"No HTTPS Encryption",
			"The connection to this site is not encrypted. Legitimate sites handling sensitive data always use HTTPS.",
			valueobject.SeverityHigh,
		))
	}

	// Rule 3: suspicious TLDs, same single-flag cap as rule 1.
	tldFound := false
	for _, tld := range suspiciousTLDs {
		if !strings.Contains(url, tld) {
			continue
		}
		if !tldFound {
			score += tldBaseScore
			flags = append(flags, valueobject.NewFlag(
				"Suspicious TLD",
				"The domain uses a TLD that is frequently associated with malicious websites.",
				valueobject.SeverityMedium,
			))
			tldFound = true
		} else {
			score += tldRepeatScore
		}
	}

	// Rule 4: excessively long URLs. Length is counted in characters, not
	// bytes, so multibyte IDN hosts are not penalized for their encoding.
	if utf8.RuneCountInString(url) > longURLThreshold {
		score += longURLScore
		flags = append(flags, valueobject.NewFlag(
			"Excessively Long URL",
			"Long and complex URLs can be used to hide the true domain name from casual inspection.",
			valueobject.SeverityLow,
		))
	}

	// Escalate when multiple independent signals agree. The clamp to 100 is
	// only reachable on this path; the safe-case draw below never exceeds it.
	if len(flags) > 1 {
		score += multiFlagPenalty
		if score > maxScore {
			score = maxScore
		}
	}

	// A clean URL still reports a small nonzero baseline, modeling residual
	// uncertainty.
	if len(flags) == 0 {
		score = s.randInt(5, 15)
	}

	recommendation := valueobject.RecommendationFromAssessment(score, len(flags))

	var virusTotal valueobject.VirusTotalVerdict
	var phishTank valueobject.PhishTankVerdict
	if score > 40 || len(flags) > 1 {
		virusTotal = valueobject.MaliciousVirusTotalVerdict(s.randInt(50, 90))
		phishTank = valueobject.MaliciousPhishTankVerdict()
	} else {
		virusTotal = valueobject.CleanVirusTotalVerdict()
		phishTank = valueobject.CleanPhishTankVerdict()
	}

	return ScoreOutput{
		RiskScore:      score,
		Flags:          flags,
		Recommendation: recommendation,
		VirusTotal:     virusTotal,
		PhishTank:      phishTank,
	}
}

// randInt returns a uniform random int in [lo, hi] inclusive.
func (s *URLScorer) randInt(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
