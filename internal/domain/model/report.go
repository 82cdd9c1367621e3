package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/domain/event"
	"github.com/phishguard/phishguard/internal/domain/valueobject"
)

// Report is the aggregate root for a single URL risk assessment. It is
// immutable after creation and lives for the process lifetime.
type Report struct {
	createdAt      time.Time
	url            string
	recommendation valueobject.Recommendation
	virusTotal     valueobject.VirusTotalVerdict
	phishTank      valueobject.PhishTankVerdict
	flags          []valueobject.Flag
	domainEvents   []interface{}
	riskScore      int
	id             uuid.UUID
}

// NewReport creates a report for an analyzed URL with a fresh id and the
// current UTC timestamp. The score must already be in [0, 100]; the scoring
// engine guarantees this, so a violation here indicates a programming error.
func NewReport(
	url string,
	riskScore int,
	recommendation valueobject.Recommendation,
	flags []valueobject.Flag,
	virusTotal valueobject.VirusTotalVerdict,
	phishTank valueobject.PhishTankVerdict,
) (*Report, error) {
	if riskScore < 0 || riskScore > 100 {
		return nil, fmt.Errorf("risk score must be between 0 and 100, got %d", riskScore)
	}
	if recommendation.IsZero() {
		return nil, fmt.Errorf("recommendation is required")
	}
	if virusTotal.IsZero() || phishTank.IsZero() {
		return nil, fmt.Errorf("intelligence verdicts are required")
	}
	if flags == nil {
		flags = make([]valueobject.Flag, 0)
	}

	r := &Report{
		id:             uuid.New(),
		url:            url,
		riskScore:      riskScore,
		recommendation: recommendation,
		flags:          flags,
		virusTotal:     virusTotal,
		phishTank:      phishTank,
		createdAt:      time.Now().UTC(),
	}

	r.domainEvents = append(r.domainEvents, event.ReportCreated{
		ReportID:       r.id,
		URL:            r.url,
		RiskScore:      r.riskScore,
		Recommendation: r.recommendation.String(),
		FlagCount:      len(r.flags),
		CreatedAt:      r.createdAt,
	})

	if r.recommendation.IsCritical() {
		titles := make([]string, 0, len(r.flags))
		for _, f := range r.flags {
			titles = append(titles, f.Title())
		}
		r.domainEvents = append(r.domainEvents, event.HighRiskDetected{
			ReportID:   r.id,
			URL:        r.url,
			RiskScore:  r.riskScore,
			FlagTitles: titles,
			DetectedAt: r.createdAt,
		})
	}

	return r, nil
}

// Reconstruct rebuilds a Report from known data (no validation, no events).
// Used for the seeded demonstration reports, which carry fixed ids and dates.
func Reconstruct(
	id uuid.UUID,
	url string,
	riskScore int,
	recommendation valueobject.Recommendation,
	flags []valueobject.Flag,
	virusTotal valueobject.VirusTotalVerdict,
	phishTank valueobject.PhishTankVerdict,
	createdAt time.Time,
) *Report {
	if flags == nil {
		flags = make([]valueobject.Flag, 0)
	}
	return &Report{
		id:             id,
		url:            url,
		riskScore:      riskScore,
		recommendation: recommendation,
		flags:          flags,
		virusTotal:     virusTotal,
		phishTank:      phishTank,
		createdAt:      createdAt,
		domainEvents:   make([]interface{}, 0),
	}
}

// --- Accessors ---

func (r *Report) ID() uuid.UUID                              { return r.id }
func (r *Report) URL() string                                { return r.url }
func (r *Report) RiskScore() int                             { return r.riskScore }
func (r *Report) Recommendation() valueobject.Recommendation { return r.recommendation }
func (r *Report) Flags() []valueobject.Flag                  { return r.flags }
func (r *Report) VirusTotal() valueobject.VirusTotalVerdict  { return r.virusTotal }
func (r *Report) PhishTank() valueobject.PhishTankVerdict    { return r.phishTank }
func (r *Report) CreatedAt() time.Time                       { return r.createdAt }

// Summary projects the report to its history-listing fields.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		ID:        r.id,
		URL:       r.url,
		RiskScore: r.riskScore,
		CreatedAt: r.createdAt,
	}
}

// DomainEvents returns all accumulated domain events and clears them.
func (r *Report) DomainEvents() []interface{} {
	evts := r.domainEvents
	r.domainEvents = make([]interface{}, 0)
	return evts
}

// ReportSummary is the projection of a report returned by history listings.
type ReportSummary struct {
	ID        uuid.UUID
	URL       string
	RiskScore int
	CreatedAt time.Time
}
