package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
)

type historyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewHistoryRepository persists served predictions. The rows are the raw
// material for future retraining datasets.
func NewHistoryRepository(db *DB) repository.HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: db.logger,
	}
}

const insertPredictionQuery = `
	INSERT INTO delivery_predictions (
		id, created_at,
		restaurant_latitude, restaurant_longitude,
		delivery_latitude, delivery_longitude,
		distance_km, predicted_time_minutes, prep_time_minutes,
		weather, traffic_density, order_type, vehicle_type, city
	) VALUES (
		:id, :created_at,
		:restaurant_latitude, :restaurant_longitude,
		:delivery_latitude, :delivery_longitude,
		:distance_km, :predicted_time_minutes, :prep_time_minutes,
		:weather, :traffic_density, :order_type, :vehicle_type, :city
	)`

func (r *historyRepository) SavePrediction(ctx context.Context, rec *domain.PredictionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, insertPredictionQuery, rec); err != nil {
		r.logger.Error("Failed to save prediction record",
			zap.String("id", rec.ID),
			zap.Error(err))
		return fmt.Errorf("insert prediction record: %w", err)
	}

	return nil
}
