package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
)

// artifactFile is the persisted model artifact: regression weights and
// intercept, the label encoder's fitted category mappings and the
// canonical feature-column order used at training time.
type artifactFile struct {
	Model struct {
		Weights   map[string]float64 `json:"weights"`
		Intercept float64            `json:"intercept"`
		Version   string             `json:"version"`
	} `json:"model"`
	Encoder        map[string]map[string]float64 `json:"encoder"`
	FeatureColumns []string                      `json:"feature_columns"`
}

// Artifact is the in-memory model handle. It is immutable after Load and
// safe for concurrent use.
type Artifact struct {
	weights        map[string]float64
	intercept      float64
	version        string
	encoder        map[string]map[string]float64
	featureColumns []string
}

// Load reads and validates the model artifact. A load failure is fatal
// for the service: it must not serve traffic without a model.
func Load(path string, logger *zap.Logger) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(file.FeatureColumns) == 0 {
		return nil, fmt.Errorf("model artifact declares no feature columns")
	}
	if len(file.Model.Weights) == 0 {
		return nil, fmt.Errorf("model artifact has no weights")
	}

	logger.Info("Model artifact loaded",
		zap.String("path", path),
		zap.String("version", file.Model.Version),
		zap.Int("feature_count", len(file.FeatureColumns)),
		zap.Int("encoder_columns", len(file.Encoder)))

	return &Artifact{
		weights:        file.Model.Weights,
		intercept:      file.Model.Intercept,
		version:        file.Model.Version,
		encoder:        file.Encoder,
		featureColumns: file.FeatureColumns,
	}, nil
}

// FeatureNames returns the canonical feature order. Callers must not
// mutate the returned slice.
func (a *Artifact) FeatureNames() []string {
	return a.featureColumns
}

// Version returns the trained model version string.
func (a *Artifact) Version() string {
	return a.version
}

// EncodeCategory maps a category value through the fitted encoder.
func (a *Artifact) EncodeCategory(feature, value string) (float64, error) {
	mapping, ok := a.encoder[feature]
	if !ok {
		return 0, fmt.Errorf("encoder was not fitted on feature %q", feature)
	}

	code, ok := mapping[value]
	if !ok {
		return 0, &domain.UnsupportedCategoryError{Feature: feature, Value: value}
	}

	return code, nil
}

// Predict evaluates the regression over an assembled feature vector.
// The vector must carry exactly the canonical columns in order.
func (a *Artifact) Predict(features domain.FeatureVector) (float64, error) {
	if features.Len() != len(a.featureColumns) {
		return 0, fmt.Errorf("feature vector has %d features, model expects %d",
			features.Len(), len(a.featureColumns))
	}

	result := a.intercept
	for i, name := range features.Names {
		if name != a.featureColumns[i] {
			return 0, fmt.Errorf("feature %d is %q, model expects %q", i, name, a.featureColumns[i])
		}
		result += a.weights[name] * features.Values[i]
	}

	return result, nil
}
