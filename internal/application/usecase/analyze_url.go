package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phishguard/phishguard/internal/application/dto"
	"github.com/phishguard/phishguard/internal/domain/model"
	"github.com/phishguard/phishguard/internal/domain/port"
	"github.com/phishguard/phishguard/internal/domain/service"
)

// AnalyzeURL is the use case for scoring a URL and recording the report.
type AnalyzeURL struct {
	repo      port.ReportRepository
	publisher port.EventPublisher
	scorer    *service.URLScorer
	logger    *slog.Logger
}

// NewAnalyzeURL creates a new AnalyzeURL use case.
func NewAnalyzeURL(
	repo port.ReportRepository,
	publisher port.EventPublisher,
	scorer *service.URLScorer,
	logger *slog.Logger,
) *AnalyzeURL {
	return &AnalyzeURL{
		repo:      repo,
		publisher: publisher,
		scorer:    scorer,
		logger:    logger,
	}
}

// Execute runs the scoring engine, creates the report, records it in the
// store, and publishes domain events. Scoring accepts any string and never
// fails; event publishing is best-effort and never fails the request.
func (uc *AnalyzeURL) Execute(ctx context.Context, req dto.AnalyzeURLRequest) (dto.ReportResponse, error) {
	output := uc.scorer.Score(req.URL)

	report, err := model.NewReport(
		req.URL,
		output.RiskScore,
		output.Recommendation,
		output.Flags,
		output.VirusTotal,
		output.PhishTank,
	)
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to create report: %w", err)
	}

	if err := uc.repo.Save(ctx, report); err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to save report: %w", err)
	}

	events := report.DomainEvents()
	if len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			uc.logger.WarnContext(ctx, "failed to publish report events",
				"report_id", report.ID(),
				"error", err,
			)
		}
	}

	return dto.FromModel(report), nil
}
