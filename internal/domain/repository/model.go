package repository

import (
	"github.com/delivery-prediction-service/internal/domain"
)

// DeliveryTimeModel is the handle to the loaded model artifact: the
// regression weights, the categorical encoder fitted at training time
// and the canonical feature-column order. It is loaded once at startup
// and is read-only for the process lifetime.
type DeliveryTimeModel interface {
	// FeatureNames returns the canonical feature columns, in the exact
	// order the model expects them.
	FeatureNames() []string

	// EncodeCategory maps a categorical value through the encoder's
	// fitted mapping. A value the encoder was not fitted on is an error.
	EncodeCategory(feature, value string) (float64, error)

	// Predict returns raw predicted minutes for an assembled vector.
	Predict(features domain.FeatureVector) (float64, error)
}
