package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition() *ModelDefinition {
	return &ModelDefinition{
		Name:        "adult-classifier",
		ModelType:   ModelTypeBinary,
		DataType:    DataTypeTabular,
		Granularity: GranularityDay,
		Features:    []ColumnDefinition{NewColumn("age", TypeInt)},
		Outputs: OutputType{
			Prediction: NewColumn("prediction", TypeFloat),
			Output:     []ColumnDefinition{NewColumn("prediction", TypeFloat)},
		},
		Target:    NewColumn("adult", TypeBool),
		Timestamp: NewColumn("created_at", TypeDatetime),
	}
}

func TestRequiredColumns(t *testing.T) {
	def := testDefinition()

	t.Run("reference", func(t *testing.T) {
		assert.Equal(t, []string{"age", "prediction", "adult"}, def.RequiredColumns())
	})

	t.Run("current_adds_timestamp", func(t *testing.T) {
		assert.Equal(t, []string{"age", "prediction", "adult", "created_at"},
			def.RequiredColumnsForCurrent(""))
	})

	t.Run("current_adds_correlation_id", func(t *testing.T) {
		assert.Equal(t, []string{"age", "prediction", "adult", "req_id", "created_at"},
			def.RequiredColumnsForCurrent("req_id"))
	})

	t.Run("multiple_outputs", func(t *testing.T) {
		multi := testDefinition()
		multi.Outputs.Output = append(multi.Outputs.Output, NewColumn("proba", TypeFloat))
		assert.Equal(t, []string{"age", "prediction", "proba", "adult"}, multi.RequiredColumns())
	})
}

func TestValidateHeaders(t *testing.T) {
	def := testDefinition()

	t.Run("exact_set_passes", func(t *testing.T) {
		err := ValidateHeaders("ref.csv", []string{"age", "adult", "prediction", "created_at"}, def.RequiredColumns())
		assert.NoError(t, err)
	})

	t.Run("superset_passes", func(t *testing.T) {
		headers := []string{"age", "adult", "prediction", "extra", "created_at"}
		err := ValidateHeaders("ref.csv", headers, def.RequiredColumns())
		assert.NoError(t, err)
	})

	t.Run("missing_column_fails", func(t *testing.T) {
		err := ValidateHeaders("ref.csv", []string{"age", "adult"}, def.RequiredColumns())
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ref.csv", vErr.File)
		assert.Equal(t, []string{"prediction"}, vErr.Missing)
		assert.Equal(t, []string{"age", "prediction", "adult"}, vErr.Required)
		assert.Contains(t, vErr.Error(), "ref.csv")
		assert.Contains(t, vErr.Error(), "prediction")
	})

	t.Run("comparison_is_case_sensitive", func(t *testing.T) {
		err := ValidateHeaders("ref.csv", []string{"Age", "adult", "prediction"}, def.RequiredColumns())
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"age"}, vErr.Missing)
	})

	t.Run("duplicate_file_headers_do_not_matter", func(t *testing.T) {
		headers := []string{"age", "age", "adult", "prediction"}
		assert.NoError(t, ValidateHeaders("ref.csv", headers, def.RequiredColumns()))
	})

	t.Run("empty_required_always_passes", func(t *testing.T) {
		assert.NoError(t, ValidateHeaders("ref.csv", nil, nil))
	})
}
