package domain

// RequiredColumns computes the minimal header set a reference file must
// satisfy: every feature, every declared output column, and the target.
// Order follows the declaration order of the definition.
func (d *ModelDefinition) RequiredColumns() []string {
	cols := make([]string, 0, len(d.Features)+len(d.Outputs.Output)+1)
	for _, f := range d.Features {
		cols = append(cols, f.Name)
	}
	for _, o := range d.Outputs.Output {
		cols = append(cols, o.Name)
	}
	cols = append(cols, d.Target.Name)
	return cols
}

// RequiredColumnsForCurrent extends RequiredColumns with the timestamp column
// and, when set, the correlation-id column required by current datasets.
func (d *ModelDefinition) RequiredColumnsForCurrent(correlationIDColumn string) []string {
	cols := d.RequiredColumns()
	if correlationIDColumn != "" {
		cols = append(cols, correlationIDColumn)
	}
	return append(cols, d.Timestamp.Name)
}

// ValidateHeaders checks that required is a subset of fileHeaders. The
// comparison is exact-string; duplicate headers in the file are left as-is.
// On failure it returns a ValidationError naming the file and the missing
// and required columns. Header extraction itself is the caller's concern.
func ValidateHeaders(fileID string, fileHeaders, required []string) error {
	present := make(map[string]bool, len(fileHeaders))
	for _, h := range fileHeaders {
		present[h] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return ErrMissingColumns(fileID, missing, required)
	}
	return nil
}
