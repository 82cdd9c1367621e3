package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeReportCreated is emitted every time a URL analysis completes.
	EventTypeReportCreated = "phishguard.report.created"

	// EventTypeHighRiskDetected is emitted when an analysis results in the
	// critical recommendation tier.
	EventTypeHighRiskDetected = "phishguard.high_risk.detected"
)

// ReportCreated is published when a risk report has been produced for a URL.
type ReportCreated struct {
	ReportID       uuid.UUID `json:"report_id"`
	URL            string    `json:"url"`
	RiskScore      int       `json:"risk_score"`
	Recommendation string    `json:"recommendation"`
	FlagCount      int       `json:"flag_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventType returns the event type identifier.
func (e ReportCreated) EventType() string {
	return EventTypeReportCreated
}

// AggregateID returns the report ID as the aggregate identifier.
func (e ReportCreated) AggregateID() uuid.UUID {
	return e.ReportID
}

// HighRiskDetected is published when a URL is assessed at the critical tier,
// so downstream consumers can alert or blocklist.
type HighRiskDetected struct {
	ReportID   uuid.UUID `json:"report_id"`
	URL        string    `json:"url"`
	RiskScore  int       `json:"risk_score"`
	FlagTitles []string  `json:"flag_titles"`
	DetectedAt time.Time `json:"detected_at"`
}

// EventType returns the event type identifier.
func (e HighRiskDetected) EventType() string {
	return EventTypeHighRiskDetected
}

// AggregateID returns the report ID as the aggregate identifier.
func (e HighRiskDetected) AggregateID() uuid.UUID {
	return e.ReportID
}
