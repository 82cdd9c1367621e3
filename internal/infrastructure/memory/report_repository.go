package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/domain/model"
)

// ReportRepository is an in-memory implementation of port.ReportRepository.
// Reports live for the process lifetime only. The mutex serializes access so
// concurrent handlers observe a consistent newest-first ordering.
type ReportRepository struct {
	mu      sync.RWMutex
	reports []*model.Report
}

// NewReportRepository creates an empty in-memory report store.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make([]*model.Report, 0),
	}
}

// Save prepends the report so index 0 is always the most recent.
func (r *ReportRepository) Save(_ context.Context, report *model.Report) error {
	if report == nil {
		return errors.New("report must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append([]*model.Report{report}, r.reports...)
	return nil
}

// FindByID scans the store in order and returns the first report with the
// given id, or nil when none matches.
func (r *ReportRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, report := range r.reports {
		if report.ID() == id {
			return report, nil
		}
	}
	return nil, nil
}

// ListSummaries projects every stored report in store order, newest first.
func (r *ReportRepository) ListSummaries(_ context.Context) ([]model.ReportSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]model.ReportSummary, 0, len(r.reports))
	for _, report := range r.reports {
		summaries = append(summaries, report.Summary())
	}
	return summaries, nil
}

// Len returns the number of stored reports.
func (r *ReportRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}
