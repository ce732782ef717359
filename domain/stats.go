package domain

// DatasetStats summarizes a bound dataset: row/column counts, missing cells,
// duplicates, and the per-classification column tally. Computed server-side;
// the client treats it as an opaque validated payload.
type DatasetStats struct {
	NVariables        int      `json:"nVariables"`
	NObservations     int      `json:"nObservations"`
	MissingCells      *int     `json:"missingCells,omitempty"`
	MissingCellsPerc  *float64 `json:"missingCellsPerc,omitempty"`
	DuplicateRows     *int     `json:"duplicateRows,omitempty"`
	DuplicateRowsPerc *float64 `json:"duplicateRowsPerc,omitempty"`
	Numeric           *int     `json:"numeric,omitempty"`
	Categorical       *int     `json:"categorical,omitempty"`
	Datetime          *int     `json:"datetime,omitempty"`
}
