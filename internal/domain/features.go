package domain

// FeatureVector is the ordered set of named numeric inputs consumed by
// the trained model. Names follow the order declared by the loaded
// model artifact.
type FeatureVector struct {
	Names  []string
	Values []float64
}

// Len returns the number of features in the vector.
func (v FeatureVector) Len() int {
	return len(v.Names)
}

// UnsupportedCategoryError reports a categorical value outside what the
// encoder was fitted on at training time.
type UnsupportedCategoryError struct {
	Feature string
	Value   string
}

func (e *UnsupportedCategoryError) Error() string {
	return "unsupported category " + e.Value + " for feature " + e.Feature
}
