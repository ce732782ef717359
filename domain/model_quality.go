package domain

// ModelQuality is the model-quality payload of a dataset. The concrete type
// depends on the model kind and on whether the dataset is a reference or a
// current one (current payloads carry windowed grouped metrics).
type ModelQuality interface {
	isModelQuality()
}

// BinaryClassificationModelQuality holds global classification metrics for a
// binary model's reference dataset.
type BinaryClassificationModelQuality struct {
	F1                        *float64 `json:"f1,omitempty"`
	Accuracy                  *float64 `json:"accuracy,omitempty"`
	Precision                 *float64 `json:"precision,omitempty"`
	Recall                    *float64 `json:"recall,omitempty"`
	FMeasure                  *float64 `json:"fMeasure,omitempty"`
	WeightedPrecision         *float64 `json:"weightedPrecision,omitempty"`
	WeightedRecall            *float64 `json:"weightedRecall,omitempty"`
	WeightedFMeasure          *float64 `json:"weightedFMeasure,omitempty"`
	WeightedTruePositiveRate  *float64 `json:"weightedTruePositiveRate,omitempty"`
	WeightedFalsePositiveRate *float64 `json:"weightedFalsePositiveRate,omitempty"`
	TruePositiveRate          *float64 `json:"truePositiveRate,omitempty"`
	FalsePositiveRate         *float64 `json:"falsePositiveRate,omitempty"`
	TruePositiveCount         *int     `json:"truePositiveCount,omitempty"`
	FalsePositiveCount        *int     `json:"falsePositiveCount,omitempty"`
	TrueNegativeCount         *int     `json:"trueNegativeCount,omitempty"`
	FalseNegativeCount        *int     `json:"falseNegativeCount,omitempty"`
	AreaUnderROC              *float64 `json:"areaUnderRoc,omitempty"`
	AreaUnderPR               *float64 `json:"areaUnderPr,omitempty"`
}

func (*BinaryClassificationModelQuality) isModelQuality() {}

// MultiClassificationModelQuality holds global classification metrics for a
// multiclass model's reference dataset.
type MultiClassificationModelQuality struct {
	Accuracy          *float64            `json:"accuracy,omitempty"`
	WeightedPrecision *float64            `json:"weightedPrecision,omitempty"`
	WeightedRecall    *float64            `json:"weightedRecall,omitempty"`
	WeightedFMeasure  *float64            `json:"weightedFMeasure,omitempty"`
	ClassMetrics      []ClassModelQuality `json:"classMetrics,omitempty"`
}

func (*MultiClassificationModelQuality) isModelQuality() {}

// ClassModelQuality holds the per-class metrics of a multiclass model.
type ClassModelQuality struct {
	ClassName string                            `json:"className"`
	Metrics   *BinaryClassificationModelQuality `json:"metrics,omitempty"`
}

// RegressionModelQuality holds regression metrics for a reference dataset.
type RegressionModelQuality struct {
	MeanAbsoluteError     *float64 `json:"mae,omitempty"`
	MeanSquaredError      *float64 `json:"mse,omitempty"`
	RootMeanSquaredError  *float64 `json:"rmse,omitempty"`
	RSquared              *float64 `json:"rSquared,omitempty"`
	MeanAbsolutePercError *float64 `json:"mape,omitempty"`
	Variance              *float64 `json:"variance,omitempty"`
}

func (*RegressionModelQuality) isModelQuality() {}

// GroupedMetric is one point of a windowed metric series on a current
// dataset, keyed by the aggregation timestamp.
type GroupedMetric struct {
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value,omitempty"`
}

// CurrentBinaryClassificationModelQuality wraps the global metrics of a
// current dataset together with their windowed series.
type CurrentBinaryClassificationModelQuality struct {
	GlobalMetrics  *BinaryClassificationModelQuality `json:"globalMetrics,omitempty"`
	GroupedMetrics map[string][]GroupedMetric        `json:"groupedMetrics,omitempty"`
}

func (*CurrentBinaryClassificationModelQuality) isModelQuality() {}

// CurrentMultiClassificationModelQuality wraps multiclass metrics of a
// current dataset together with their windowed series.
type CurrentMultiClassificationModelQuality struct {
	GlobalMetrics  *MultiClassificationModelQuality `json:"globalMetrics,omitempty"`
	GroupedMetrics map[string][]GroupedMetric       `json:"groupedMetrics,omitempty"`
}

func (*CurrentMultiClassificationModelQuality) isModelQuality() {}

// CurrentRegressionModelQuality wraps regression metrics of a current
// dataset together with their windowed series.
type CurrentRegressionModelQuality struct {
	GlobalMetrics  *RegressionModelQuality    `json:"globalMetrics,omitempty"`
	GroupedMetrics map[string][]GroupedMetric `json:"groupedMetrics,omitempty"`
}

func (*CurrentRegressionModelQuality) isModelQuality() {}
