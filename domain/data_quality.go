package domain

// DataQuality is the data-quality payload of a dataset. The concrete type
// depends on the model kind: classification models produce
// ClassificationDataQuality, regression models RegressionDataQuality.
type DataQuality interface {
	isDataQuality()
}

// ClassMetrics counts the observations of one target class.
type ClassMetrics struct {
	Name       string   `json:"name"`
	Count      int      `json:"count"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// MedianMetrics holds the quartile summary of a numerical feature.
type MedianMetrics struct {
	Perc25 *float64 `json:"perc25,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Perc75 *float64 `json:"perc75,omitempty"`
}

// MissingValue counts missing cells of one feature.
type MissingValue struct {
	Count      int      `json:"count"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// ClassMedianMetrics holds the per-class quartile summary of a numerical
// feature.
type ClassMedianMetrics struct {
	Name          string         `json:"name"`
	Mean          *float64       `json:"mean,omitempty"`
	MedianMetrics *MedianMetrics `json:"medianMetrics,omitempty"`
}

// FeatureMetrics is the per-feature quality summary common to every feature
// classification.
type FeatureMetrics struct {
	FeatureName  string        `json:"featureName"`
	Type         string        `json:"type"`
	MissingValue *MissingValue `json:"missingValue,omitempty"`
}

// NumericalFeatureMetrics extends FeatureMetrics with distribution summaries
// for numerical features.
type NumericalFeatureMetrics struct {
	FeatureMetrics
	Mean               *float64             `json:"mean,omitempty"`
	Std                *float64             `json:"std,omitempty"`
	Min                *float64             `json:"min,omitempty"`
	Max                *float64             `json:"max,omitempty"`
	MedianMetrics      *MedianMetrics       `json:"medianMetrics,omitempty"`
	ClassMedianMetrics []ClassMedianMetrics `json:"classMedianMetrics,omitempty"`
}

// CategoryFrequency counts one category value of a categorical feature.
type CategoryFrequency struct {
	Name      string   `json:"name"`
	Count     int      `json:"count"`
	Frequency *float64 `json:"frequency,omitempty"`
}

// CategoricalFeatureMetrics extends FeatureMetrics with category frequencies
// for categorical features.
type CategoricalFeatureMetrics struct {
	FeatureMetrics
	CategoryFrequency []CategoryFrequency `json:"categoryFrequency,omitempty"`
	DistinctValue     *int                `json:"distinctValue,omitempty"`
}

// ClassificationDataQuality is the data-quality payload for binary and
// multiclass models.
type ClassificationDataQuality struct {
	NObservations  *int             `json:"nObservations,omitempty"`
	ClassMetrics   []ClassMetrics   `json:"classMetrics,omitempty"`
	FeatureMetrics []FeatureMetrics `json:"featureMetrics,omitempty"`
}

func (*ClassificationDataQuality) isDataQuality() {}

// RegressionDataQuality is the data-quality payload for regression models.
type RegressionDataQuality struct {
	NObservations  *int                     `json:"nObservations,omitempty"`
	TargetMetrics  *NumericalFeatureMetrics `json:"targetMetrics,omitempty"`
	FeatureMetrics []FeatureMetrics         `json:"featureMetrics,omitempty"`
}

func (*RegressionDataQuality) isDataQuality() {}
