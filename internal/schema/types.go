package schema

import (
	"strconv"
)

// DefaultNullToken is the literal osm2po writes for an absent value.
const DefaultNullToken = "null"

// FieldType pairs a text-to-value converter with the Avro type tag the
// structured writers use. The converter never sees the null token; Apply
// short-circuits it to nil.
type FieldType struct {
	convert   func(string) (interface{}, error)
	avroType  string
	nullToken string
}

func NewFieldType(convert func(string) (interface{}, error), avroType string) FieldType {
	return FieldType{convert: convert, avroType: avroType, nullToken: DefaultNullToken}
}

// WithNullToken returns a copy recognizing tok as the null literal.
func (ft FieldType) WithNullToken(tok string) FieldType {
	ft.nullToken = tok
	return ft
}

// Apply converts one raw literal into its typed value, or nil when the raw
// text equals the field's null token.
func (ft FieldType) Apply(raw string) (interface{}, error) {
	if raw == ft.nullToken {
		return nil, nil
	}
	return ft.convert(raw)
}

// AvroType reports the non-null branch of the field's Avro union.
func (ft FieldType) AvroType() string {
	return ft.avroType
}

func parseInt(raw string) (interface{}, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	return int32(v), nil
}

func parseLong(raw string) (interface{}, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseDouble(raw string) (interface{}, error) {
	return strconv.ParseFloat(raw, 64)
}

func passString(raw string) (interface{}, error) {
	return raw, nil
}

// StringFieldType is the fallback for SQL types the registry does not know.
func StringFieldType() FieldType {
	return NewFieldType(passString, "string")
}

// sqlTypeMapping resolves the SQL type text captured from CREATE TABLE
// column definitions. Lookup is exact and case-sensitive, matching what
// osm2po emits.
var sqlTypeMapping = map[string]func() FieldType{
	"integer":           func() FieldType { return NewFieldType(parseInt, "int") },
	"bigint":            func() FieldType { return NewFieldType(parseLong, "long") },
	"character varying": StringFieldType,
	"double precision":  func() FieldType { return NewFieldType(parseDouble, "double") },
}

// LookupFieldType maps a SQL column type to its FieldType. Unrecognized
// types fall back to a string pass-through; this never fails.
func LookupFieldType(sqlType string) FieldType {
	if ctor, ok := sqlTypeMapping[sqlType]; ok {
		return ctor()
	}
	return StringFieldType()
}
