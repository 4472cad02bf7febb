package convert

import (
	"errors"
	"fmt"

	"github.com/routetools/pgrconv/internal/schema"
)

var (
	// ErrSchemaMismatch aborts the run when a row's literal count does not
	// line up with the schema's column count.
	ErrSchemaMismatch = errors.New("row value count does not match schema")

	// ErrNoSchema aborts the run when a row line precedes any schema
	// definition; rows cannot be parsed positionally without one.
	ErrNoSchema = errors.New("row data before any schema definition")
)

// SchemaView is the read-only slice of the table schema the row parser
// needs. The schema builder keeps the mutable side to itself.
type SchemaView interface {
	Columns() []string
	FieldType(name string) schema.FieldType
}

// ParseRow turns one row's comma-separated literal text into a typed
// Record, in schema column order. Field count must equal column count;
// converter failures propagate and abort the run.
func ParseRow(values string, view SchemaView) (schema.Record, error) {
	cols := view.Columns()
	raw := splitRowValues(values)
	if len(raw) != len(cols) {
		return nil, fmt.Errorf("%w: %d values for %d columns", ErrSchemaMismatch, len(raw), len(cols))
	}
	rec := make(schema.Record, len(cols))
	for i, col := range cols {
		v, err := view.FieldType(col).Apply(raw[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: cannot convert %q: %w", col, raw[i], err)
		}
		rec[col] = v
	}
	return rec, nil
}
