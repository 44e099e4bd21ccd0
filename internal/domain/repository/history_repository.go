package repository

import (
	"context"

	"github.com/delivery-prediction-service/internal/domain"
)

// HistoryRepository persists served predictions for future retraining.
type HistoryRepository interface {
	SavePrediction(ctx context.Context, rec *domain.PredictionRecord) error
}
