package usecase

import (
	"context"
	"fmt"

	"github.com/phishguard/phishguard/internal/application/dto"
	"github.com/phishguard/phishguard/internal/domain/port"
)

// ListHistory is the use case for listing all stored report summaries.
type ListHistory struct {
	repo port.ReportRepository
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(repo port.ReportRepository) *ListHistory {
	return &ListHistory{repo: repo}
}

// Execute returns summaries of every stored report, newest first.
func (uc *ListHistory) Execute(ctx context.Context) ([]dto.ReportSummaryResponse, error) {
	summaries, err := uc.repo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report summaries: %w", err)
	}

	out := make([]dto.ReportSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.SummaryFromModel(s))
	}
	return out, nil
}
