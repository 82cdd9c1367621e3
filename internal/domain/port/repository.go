package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/domain/model"
)

// ReportRepository defines the storage port for URL risk reports. The store
// is an ordered sequence, newest first; reports are never mutated or removed
// after insertion.
type ReportRepository interface {
	// Save prepends a report to the sequence.
	Save(ctx context.Context, report *model.Report) error

	// FindByID retrieves a report by its unique identifier. Returns nil with
	// no error when no report carries that id.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)

	// ListSummaries projects every stored report to its summary fields,
	// preserving store order.
	ListSummaries(ctx context.Context) ([]model.ReportSummary, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...interface{}) error
}
