package dto

import (
	"time"

	"github.com/phishguard/phishguard/internal/domain/model"
)

// AnalyzeURLRequest is the input DTO for the AnalyzeURL use case.
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// FlagResponse is one detected risk signal as exposed over the API.
type FlagResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// VirusTotalResponse carries the synthesized VirusTotal-style enrichment.
type VirusTotalResponse struct {
	Score   string `json:"score"`
	Summary string `json:"summary"`
}

// PhishTankResponse carries the synthesized PhishTank-style enrichment.
type PhishTankResponse struct {
	Status  string `json:"status"`
	Summary string `json:"summary"`
}

// ReportResponse is the full report DTO returned after an analysis or lookup.
// Field names follow the public API contract.
type ReportResponse struct {
	ID             string             `json:"id"`
	URL            string             `json:"url"`
	RiskScore      int                `json:"riskScore"`
	Recommendation string             `json:"recommendation"`
	Flags          []FlagResponse     `json:"flags"`
	VirusTotal     VirusTotalResponse `json:"virusTotal"`
	PhishTank      PhishTankResponse  `json:"phishTank"`
	Date           string             `json:"date"`
}

// ReportSummaryResponse is the history-listing projection of a report.
type ReportSummaryResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	RiskScore int    `json:"riskScore"`
	Date      string `json:"date"`
}

// FromModel maps a domain report to the response DTO.
func FromModel(r *model.Report) ReportResponse {
	flags := make([]FlagResponse, 0, len(r.Flags()))
	for _, f := range r.Flags() {
		flags = append(flags, FlagResponse{
			Title:       f.Title(),
			Description: f.Description(),
			Severity:    f.Severity().String(),
		})
	}

	return ReportResponse{
		ID:             r.ID().String(),
		URL:            r.URL(),
		RiskScore:      r.RiskScore(),
		Recommendation: r.Recommendation().String(),
		Flags:          flags,
		VirusTotal: VirusTotalResponse{
			Score:   r.VirusTotal().Score(),
			Summary: r.VirusTotal().Summary(),
		},
		PhishTank: PhishTankResponse{
			Status:  r.PhishTank().Status(),
			Summary: r.PhishTank().Summary(),
		},
		Date: formatDate(r.CreatedAt()),
	}
}

// SummaryFromModel maps a domain summary to the response DTO.
func SummaryFromModel(s model.ReportSummary) ReportSummaryResponse {
	return ReportSummaryResponse{
		ID:        s.ID.String(),
		URL:       s.URL,
		RiskScore: s.RiskScore,
		Date:      formatDate(s.CreatedAt),
	}
}

// formatDate renders a timestamp as UTC ISO-8601 with a trailing Z.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
