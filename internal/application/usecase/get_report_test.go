package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/application/dto"
	"github.com/phishguard/phishguard/internal/application/usecase"
	"github.com/phishguard/phishguard/internal/domain/model"
	"github.com/phishguard/phishguard/internal/domain/service"
)

func TestGetReport_Execute(t *testing.T) {
	t.Run("returns the stored report", func(t *testing.T) {
		repo := &mockReportRepository{}
		publisher := &mockEventPublisher{}
		scorer := service.NewURLScorer()

		analyzed, err := usecase.NewAnalyzeURL(repo, publisher, scorer, testLogger()).
			Execute(context.Background(), dto.AnalyzeURLRequest{URL: "https://real-bank.com/login"})
		require.NoError(t, err)

		uc := usecase.NewGetReport(repo)
		resp, err := uc.Execute(context.Background(), analyzed.ID)

		require.NoError(t, err)
		assert.Equal(t, analyzed, resp)
	})

	t.Run("returns not found for an id never issued", func(t *testing.T) {
		uc := usecase.NewGetReport(&mockReportRepository{})

		_, err := uc.Execute(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, usecase.ErrReportNotFound)
	})

	t.Run("returns not found for an id that is not a uuid", func(t *testing.T) {
		uc := usecase.NewGetReport(&mockReportRepository{})

		_, err := uc.Execute(context.Background(), "not-a-real-id")

		assert.ErrorIs(t, err, usecase.ErrReportNotFound)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := &mockReportRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Report, error) {
				return nil, errors.New("store offline")
			},
		}
		uc := usecase.NewGetReport(repo)

		_, err := uc.Execute(context.Background(), uuid.NewString())

		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrReportNotFound)
	})
}
