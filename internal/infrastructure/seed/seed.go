package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/domain/model"
	"github.com/phishguard/phishguard/internal/domain/port"
	"github.com/phishguard/phishguard/internal/domain/service"
)

// Demonstration reports shown on first use so the history is never empty.
// They are produced by the live scoring engine and then rebuilt with fixed
// ids and dates.
var demos = []struct {
	id   uuid.UUID
	url  string
	date time.Time
}{
	{
		id:   uuid.MustParse("7b1c2a44-9f3e-4d1b-8a67-2f05c4a9e301"),
		url:  "https://real-bank.com/login",
		date: time.Date(2023, 10, 27, 9, 15, 0, 0, time.UTC),
	},
	{
		id:   uuid.MustParse("c3a8f6d0-1e2b-4c5d-9b7a-8e4f0a6d5102"),
		url:  "http://secure-login-bank.com/update",
		date: time.Date(2023, 10, 27, 10, 30, 0, 0, time.UTC),
	},
}

// Reports stores the demonstration reports, oldest first so the store ends
// up newest-first like live traffic.
func Reports(ctx context.Context, scorer *service.URLScorer, repo port.ReportRepository) error {
	for _, demo := range demos {
		output := scorer.Score(demo.url)
		report := model.Reconstruct(
			demo.id,
			demo.url,
			output.RiskScore,
			output.Recommendation,
			output.Flags,
			output.VirusTotal,
			output.PhishTank,
			demo.date,
		)
		if err := repo.Save(ctx, report); err != nil {
			return fmt.Errorf("failed to seed report for %s: %w", demo.url, err)
		}
	}
	return nil
}
