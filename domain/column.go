// Package domain defines the core types, interfaces, and errors shared by the
// driftlens SDK and CLI.
package domain

// SupportedType enumerates the value kinds a column may declare.
type SupportedType string

// Declared column value kinds.
const (
	TypeInt      SupportedType = "int"
	TypeFloat    SupportedType = "float"
	TypeString   SupportedType = "string"
	TypeBool     SupportedType = "bool"
	TypeDatetime SupportedType = "datetime"
)

// FieldType is the classification derived from a column's declared value
// kind, used by grouping queries (numerical aggregations, category counts).
type FieldType string

// Derived field classifications.
const (
	FieldNumerical   FieldType = "numerical"
	FieldCategorical FieldType = "categorical"
	FieldDatetime    FieldType = "datetime"
)

// FieldTypeFor maps a declared value kind to its derived classification.
func FieldTypeFor(t SupportedType) FieldType {
	switch t {
	case TypeInt, TypeFloat:
		return FieldNumerical
	case TypeDatetime:
		return FieldDatetime
	default:
		return FieldCategorical
	}
}

// ColumnDefinition describes a single declared column of a model: its name
// (unique within a model definition), value kind, and derived classification.
type ColumnDefinition struct {
	Name      string        `json:"name"`
	Type      SupportedType `json:"type"`
	FieldType FieldType     `json:"fieldType"`
}

// NewColumn builds a ColumnDefinition with the classification derived from
// the declared value kind.
func NewColumn(name string, t SupportedType) ColumnDefinition {
	return ColumnDefinition{Name: name, Type: t, FieldType: FieldTypeFor(t)}
}

// IsNumerical reports whether the column is classified as numerical.
func (c ColumnDefinition) IsNumerical() bool { return c.FieldType == FieldNumerical }

// IsCategorical reports whether the column is classified as categorical.
func (c ColumnDefinition) IsCategorical() bool { return c.FieldType == FieldCategorical }

// IsDatetime reports whether the column is classified as datetime.
func (c ColumnDefinition) IsDatetime() bool { return c.FieldType == FieldDatetime }

// IsFloat reports whether the column declares a float value kind.
func (c ColumnDefinition) IsFloat() bool { return c.Type == TypeFloat }

// IsInt reports whether the column declares an int value kind.
func (c ColumnDefinition) IsInt() bool { return c.Type == TypeInt }
