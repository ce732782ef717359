package domain

// DriftAlgorithm identifies the statistical test used to detect drift on one
// feature.
type DriftAlgorithm string

// Supported drift detection algorithms.
const (
	DriftKolmogorovSmirnov DriftAlgorithm = "KS"
	DriftChiSquare         DriftAlgorithm = "CHI2"
	DriftPSI               DriftAlgorithm = "PSI"
)

// FeatureDriftCalculation is the outcome of one drift test on one feature.
type FeatureDriftCalculation struct {
	Type     DriftAlgorithm `json:"type"`
	Value    *float64       `json:"value,omitempty"`
	HasDrift bool           `json:"hasDrift"`
}

// FeatureDrift aggregates the drift calculations of one feature.
type FeatureDrift struct {
	FeatureName string                   `json:"featureName"`
	DriftCalc   *FeatureDriftCalculation `json:"driftCalc,omitempty"`
}

// Drift is the drift payload of a current dataset: one entry per feature,
// comparing the current distribution against the reference one.
type Drift struct {
	FeatureMetrics []FeatureDrift `json:"featureMetrics,omitempty"`
}
