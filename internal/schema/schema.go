package schema

import (
	"encoding/json"
)

// Record is one parsed row, keyed by column name. Values are typed per the
// schema's FieldTypes, or nil for the null token. Column order lives in the
// TableSchema, not here.
type Record map[string]interface{}

// TableSchema is an ordered column-name-to-FieldType mapping accumulated
// from DDL lines. Order is insertion order and defines the positional
// correspondence with row literals and the field order of every writer.
//
// It is mutated only by the DDL operations in parser.go; the row parser and
// the writers consume it through read-only accessors.
type TableSchema struct {
	Name string

	order     []string
	fields    map[string]FieldType
	nullToken string
}

func NewTableSchema() *TableSchema {
	return &TableSchema{
		fields:    make(map[string]FieldType),
		nullToken: DefaultNullToken,
	}
}

// SetNullToken changes the null literal applied to fields added after the
// call. Must happen before any DDL line is fed in.
func (s *TableSchema) SetNullToken(tok string) {
	if tok != "" {
		s.nullToken = tok
	}
}

// AddField inserts a column at the end of the ordering, or overwrites its
// FieldType in place when the name is already present.
func (s *TableSchema) AddField(name string, ft FieldType) {
	if _, ok := s.fields[name]; !ok {
		s.order = append(s.order, name)
	}
	s.fields[name] = ft.WithNullToken(s.nullToken)
}

// Columns returns the column names in schema order.
func (s *TableSchema) Columns() []string {
	cols := make([]string, len(s.order))
	copy(cols, s.order)
	return cols
}

func (s *TableSchema) Len() int {
	return len(s.order)
}

// FieldType returns the column's FieldType, falling back to the string
// pass-through for names the schema never saw.
func (s *TableSchema) FieldType(name string) FieldType {
	if ft, ok := s.fields[name]; ok {
		return ft
	}
	return StringFieldType().WithNullToken(s.nullToken)
}

type avroField struct {
	Name string   `json:"name"`
	Type []string `json:"type"`
}

type avroRecord struct {
	Doc       string      `json:"doc"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace"`
	Type      string      `json:"type"`
	Fields    []avroField `json:"fields"`
}

// AvroSchema renders the schema as an Avro record declaration. Every field
// is a ["null", type] union so absent values survive the round trip.
func (s *TableSchema) AvroSchema() (string, error) {
	fields := make([]avroField, 0, len(s.order))
	for _, name := range s.order {
		fields = append(fields, avroField{
			Name: name,
			Type: []string{"null", s.fields[name].AvroType()},
		})
	}
	out, err := json.Marshal(avroRecord{
		Doc:       "PgRouting compatible OpenStreetMap data",
		Name:      "PgRoutingData",
		Namespace: "osm2po",
		Type:      "record",
		Fields:    fields,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
