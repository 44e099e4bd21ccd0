package mlmodel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
)

const testArtifact = `{
	"model": {
		"weights": {"distance": 3.0, "Weather_conditions": 2.0, "order_prepare_time": 1.0},
		"intercept": 10.0,
		"version": "test-1"
	},
	"encoder": {
		"Weather_conditions": {"Sunny": 4.0, "Stormy": 3.0, "Fog": 1.0}
	},
	"feature_columns": ["distance", "Weather_conditions", "order_prepare_time"]
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	logger := zap.NewNop()

	t.Run("valid artifact", func(t *testing.T) {
		artifact, err := Load(writeArtifact(t, testArtifact), logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"distance", "Weather_conditions", "order_prepare_time"}, artifact.FeatureNames())
		assert.Equal(t, "test-1", artifact.Version())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"), logger)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{"model":`), logger)
		assert.Error(t, err)
	})

	t.Run("no feature columns", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{"model":{"weights":{"x":1}},"feature_columns":[]}`), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no feature columns")
	})

	t.Run("no weights", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{"model":{"weights":{}},"feature_columns":["x"]}`), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no weights")
	})
}

func TestArtifact_EncodeCategory(t *testing.T) {
	artifact, err := Load(writeArtifact(t, testArtifact), zap.NewNop())
	require.NoError(t, err)

	t.Run("fitted category", func(t *testing.T) {
		code, err := artifact.EncodeCategory("Weather_conditions", "Sunny")
		require.NoError(t, err)
		assert.Equal(t, 4.0, code)
	})

	t.Run("encoding is idempotent", func(t *testing.T) {
		first, err := artifact.EncodeCategory("Weather_conditions", "Fog")
		require.NoError(t, err)
		second, err := artifact.EncodeCategory("Weather_conditions", "Fog")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unfitted category", func(t *testing.T) {
		_, err := artifact.EncodeCategory("Weather_conditions", "Hail")
		require.Error(t, err)

		var catErr *domain.UnsupportedCategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, "Weather_conditions", catErr.Feature)
		assert.Equal(t, "Hail", catErr.Value)
	})

	t.Run("unfitted feature", func(t *testing.T) {
		_, err := artifact.EncodeCategory("Road_traffic_density", "Low")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not fitted")
	})
}

func TestArtifact_Predict(t *testing.T) {
	artifact, err := Load(writeArtifact(t, testArtifact), zap.NewNop())
	require.NoError(t, err)

	t.Run("linear evaluation", func(t *testing.T) {
		got, err := artifact.Predict(domain.FeatureVector{
			Names:  []string{"distance", "Weather_conditions", "order_prepare_time"},
			Values: []float64{5.0, 4.0, 15.0},
		})
		require.NoError(t, err)
		// 10 + 3*5 + 2*4 + 1*15
		assert.InDelta(t, 48.0, got, 1e-9)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := artifact.Predict(domain.FeatureVector{
			Names:  []string{"distance"},
			Values: []float64{5.0},
		})
		assert.Error(t, err)
	})

	t.Run("wrong order", func(t *testing.T) {
		_, err := artifact.Predict(domain.FeatureVector{
			Names:  []string{"Weather_conditions", "distance", "order_prepare_time"},
			Values: []float64{4.0, 5.0, 15.0},
		})
		assert.Error(t, err)
	})
}
