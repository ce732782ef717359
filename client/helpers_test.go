package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"driftlens/domain"
	"driftlens/internal/testutil"
)

var testModelUUID = uuid.MustParse("0a4f0c39-32cd-4a47-9d4f-9a1f2b3c4d5e")

// testDefinition builds the registry used across binder and handle tests:
// features [age:int], target adult:bool, output prediction:float, timestamp
// created_at:datetime.
func testDefinition(modelType domain.ModelType) domain.ModelDefinition {
	return domain.ModelDefinition{
		UUID:        testModelUUID,
		Name:        "adult-classifier",
		ModelType:   modelType,
		DataType:    domain.DataTypeTabular,
		Granularity: domain.GranularityDay,
		Features:    []domain.ColumnDefinition{domain.NewColumn("age", domain.TypeInt)},
		Outputs: domain.OutputType{
			Prediction: domain.NewColumn("prediction", domain.TypeFloat),
			Output:     []domain.ColumnDefinition{domain.NewColumn("prediction", domain.TypeFloat)},
		},
		Target:    domain.NewColumn("adult", domain.TypeBool),
		Timestamp: domain.NewColumn("created_at", domain.TypeDatetime),
		CreatedAt: "2026-01-12T10:00:00Z",
		UpdatedAt: "2026-01-12T10:00:00Z",
	}
}

// testModel wires a Model to the given client and mock store.
func testModel(c *Client, modelType domain.ModelType, store *testutil.MockObjectStore) *Model {
	m := newModel(c, testDefinition(modelType))
	m.newStore = func(*domain.StorageCredentials) domain.ObjectStore { return store }
	return m
}

// writeCSV drops a small CSV file with the given header line into a temp dir.
func writeCSV(t *testing.T, header string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"\n1,row\n"), 0o600))
	return path
}
