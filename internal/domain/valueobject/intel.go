package valueobject

import "fmt"

// VirusTotalVerdict is an immutable value object carrying the synthesized
// VirusTotal-style enrichment for a report. It is derived entirely from the
// already-computed score and flag state and carries no independent signal.
type VirusTotalVerdict struct {
	score   string
	summary string
}

// CleanVirusTotalVerdict returns the fixed verdict for low-risk reports.
func CleanVirusTotalVerdict() VirusTotalVerdict {
	return VirusTotalVerdict{
		score:   "0/90 Clean",
		summary: "Mock data: No vendors flagged this.",
	}
}

// MaliciousVirusTotalVerdict returns the verdict for high-risk reports, with
// the given number of detecting vendors out of 90.
func MaliciousVirusTotalVerdict(detections int) VirusTotalVerdict {
	return VirusTotalVerdict{
		score:   fmt.Sprintf("%d/90 Malicious", detections),
		summary: "Mock data: Multiple vendors flagged this as a severe threat.",
	}
}

// ReconstructVirusTotalVerdict rebuilds a verdict from stored fields.
func ReconstructVirusTotalVerdict(score, summary string) VirusTotalVerdict {
	return VirusTotalVerdict{score: score, summary: summary}
}

// Score returns the vendor detection ratio string.
func (v VirusTotalVerdict) Score() string {
	return v.score
}

// Summary returns the verdict summary text.
func (v VirusTotalVerdict) Summary() string {
	return v.summary
}

// IsZero returns true if the verdict has not been set.
func (v VirusTotalVerdict) IsZero() bool {
	return v.score == ""
}

// PhishTankVerdict is an immutable value object carrying the synthesized
// PhishTank-style enrichment for a report.
type PhishTankVerdict struct {
	status  string
	summary string
}

// CleanPhishTankVerdict returns the fixed verdict for low-risk reports.
func CleanPhishTankVerdict() PhishTankVerdict {
	return PhishTankVerdict{
		status:  "Not a Phish (Mock)",
		summary: "Mock data: This is a legitimate link.",
	}
}

// MaliciousPhishTankVerdict returns the fixed verdict for high-risk reports.
func MaliciousPhishTankVerdict() PhishTankVerdict {
	return PhishTankVerdict{
		status:  "Verified Severe Phish (Mock)",
		summary: "Mock data: This is a known and dangerous phishing link.",
	}
}

// ReconstructPhishTankVerdict rebuilds a verdict from stored fields.
func ReconstructPhishTankVerdict(status, summary string) PhishTankVerdict {
	return PhishTankVerdict{status: status, summary: summary}
}

// Status returns the verdict status text.
func (p PhishTankVerdict) Status() string {
	return p.status
}

// Summary returns the verdict summary text.
func (p PhishTankVerdict) Summary() string {
	return p.summary
}

// IsZero returns true if the verdict has not been set.
func (p PhishTankVerdict) IsZero() bool {
	return p.status == ""
}
