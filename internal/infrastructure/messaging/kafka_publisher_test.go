package messaging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/domain/event"
	"github.com/phishguard/phishguard/internal/infrastructure/messaging"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := messaging.NewLogPublisher(logger)

	reportID := uuid.New()
	err := publisher.Publish(context.Background(),
		event.ReportCreated{
			ReportID:  reportID,
			URL:       "http://example.xyz",
			RiskScore: 65,
			FlagCount: 2,
			CreatedAt: time.Now().UTC(),
		},
		event.HighRiskDetected{
			ReportID:   reportID,
			URL:        "http://example.xyz",
			RiskScore:  65,
			DetectedAt: time.Now().UTC(),
		},
	)

	require.NoError(t, err)
	logged := buf.String()
	assert.Contains(t, logged, event.EventTypeReportCreated)
	assert.Contains(t, logged, event.EventTypeHighRiskDetected)
	assert.Contains(t, logged, reportID.String())
}

func TestLogPublisher_NoEvents(t *testing.T) {
	var buf bytes.Buffer
	publisher := messaging.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, publisher.Publish(context.Background()))
	assert.Empty(t, buf.String())
}
