package domain

import (
	"github.com/google/uuid"
)

// ModelType is the kind of problem a model solves.
type ModelType string

// Supported model types.
const (
	ModelTypeBinary     ModelType = "BINARY"
	ModelTypeMulticlass ModelType = "MULTI_CLASS"
	ModelTypeRegression ModelType = "REGRESSION"
)

// DataType is the shape of the data a model consumes.
type DataType string

// Supported data types.
const (
	DataTypeTabular DataType = "TABULAR"
	DataTypeText    DataType = "TEXT"
	DataTypeImage   DataType = "IMAGE"
)

// Granularity is the window used to calculate aggregated metrics.
type Granularity string

// Supported aggregation granularities.
const (
	GranularityHour  Granularity = "HOUR"
	GranularityDay   Granularity = "DAY"
	GranularityWeek  Granularity = "WEEK"
	GranularityMonth Granularity = "MONTH"
)

// OutputType describes the output surface of a model: the prediction column,
// an optional prediction-probability column, and the full list of output
// columns a bound file must carry.
type OutputType struct {
	Prediction      ColumnDefinition  `json:"prediction"`
	PredictionProba *ColumnDefinition `json:"predictionProba,omitempty"`
	Output          []ColumnDefinition `json:"output"`
}

// ModelDefinition is the server-acknowledged definition of a model: the
// declared feature set, target, timestamp, and outputs that the validator and
// binder consume.
type ModelDefinition struct {
	UUID        uuid.UUID          `json:"uuid"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	ModelType   ModelType          `json:"modelType"`
	DataType    DataType           `json:"dataType"`
	Granularity Granularity        `json:"granularity"`
	Features    []ColumnDefinition `json:"features"`
	Outputs     OutputType         `json:"outputs"`
	Target      ColumnDefinition   `json:"target"`
	Timestamp   ColumnDefinition   `json:"timestamp"`
	Frameworks  string             `json:"frameworks,omitempty"`
	Algorithm   string             `json:"algorithm,omitempty"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

// NumericalFeatures returns the features classified as numerical.
func (d *ModelDefinition) NumericalFeatures() []ColumnDefinition {
	return filterColumns(d.Features, ColumnDefinition.IsNumerical)
}

// CategoricalFeatures returns the features classified as categorical.
func (d *ModelDefinition) CategoricalFeatures() []ColumnDefinition {
	return filterColumns(d.Features, ColumnDefinition.IsCategorical)
}

// DatetimeFeatures returns the features classified as datetime.
func (d *ModelDefinition) DatetimeFeatures() []ColumnDefinition {
	return filterColumns(d.Features, ColumnDefinition.IsDatetime)
}

// FloatFeatures returns the features declaring a float value kind.
func (d *ModelDefinition) FloatFeatures() []ColumnDefinition {
	return filterColumns(d.Features, ColumnDefinition.IsFloat)
}

// IntFeatures returns the features declaring an int value kind.
func (d *ModelDefinition) IntFeatures() []ColumnDefinition {
	return filterColumns(d.Features, ColumnDefinition.IsInt)
}

func filterColumns(cols []ColumnDefinition, keep func(ColumnDefinition) bool) []ColumnDefinition {
	var out []ColumnDefinition
	for _, c := range cols {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// CreateModel holds parameters for registering a new model.
type CreateModel struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	ModelType   ModelType          `json:"modelType"`
	DataType    DataType           `json:"dataType"`
	Granularity Granularity        `json:"granularity"`
	Features    []ColumnDefinition `json:"features"`
	Outputs     OutputType         `json:"outputs"`
	Target      ColumnDefinition   `json:"target"`
	Timestamp   ColumnDefinition   `json:"timestamp"`
	Frameworks  string             `json:"frameworks,omitempty"`
	Algorithm   string             `json:"algorithm,omitempty"`
}

// Validate checks that the request is well-formed.
func (r *CreateModel) Validate() error {
	if r.Name == "" {
		return ErrValidationMsg("name is required")
	}
	switch r.ModelType {
	case ModelTypeBinary, ModelTypeMulticlass, ModelTypeRegression:
	default:
		return ErrValidationMsg("model_type must be BINARY, MULTI_CLASS, or REGRESSION")
	}
	switch r.Granularity {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return ErrValidationMsg("granularity must be HOUR, DAY, WEEK, or MONTH")
	}
	if len(r.Features) == 0 {
		return ErrValidationMsg("at least one feature is required")
	}
	seen := make(map[string]bool, len(r.Features))
	for _, f := range r.Features {
		if f.Name == "" {
			return ErrValidationMsg("feature names must not be empty")
		}
		if seen[f.Name] {
			return ErrValidationMsg("duplicate feature name %q", f.Name)
		}
		seen[f.Name] = true
	}
	if r.Target.Name == "" {
		return ErrValidationMsg("target column is required")
	}
	if r.Timestamp.Name == "" {
		return ErrValidationMsg("timestamp column is required")
	}
	if r.Outputs.Prediction.Name == "" {
		return ErrValidationMsg("outputs.prediction column is required")
	}
	if len(r.Outputs.Output) == 0 {
		return ErrValidationMsg("outputs.output must not be empty")
	}
	return nil
}

// ModelFeatures is the full replacement feature list sent by the
// update-features operation.
type ModelFeatures struct {
	Features []ColumnDefinition `json:"features"`
}
