package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/application/dto"
	"github.com/phishguard/phishguard/internal/domain/port"
)

// ErrReportNotFound is returned when no report carries the requested id.
// An id that is not a valid uuid can never have been issued, so it maps to
// the same condition.
var ErrReportNotFound = errors.New("report not found")

// GetReport is the use case for retrieving a single report by id.
type GetReport struct {
	repo port.ReportRepository
}

// NewGetReport creates a new GetReport use case.
func NewGetReport(repo port.ReportRepository) *GetReport {
	return &GetReport{repo: repo}
}

// Execute retrieves a report by its string id.
func (uc *GetReport) Execute(ctx context.Context, id string) (dto.ReportResponse, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return dto.ReportResponse{}, ErrReportNotFound
	}

	report, err := uc.repo.FindByID(ctx, reportID)
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to find report: %w", err)
	}
	if report == nil {
		return dto.ReportResponse{}, ErrReportNotFound
	}

	return dto.FromModel(report), nil
}
