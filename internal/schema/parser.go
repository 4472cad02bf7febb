package schema

import (
	"strings"

	"github.com/routetools/pgrconv/internal/geometry"
)

// AddFieldsFromCreateTableDDL scans a single-line CREATE TABLE statement and
// appends its columns in declaration order. Lines that do not match the
// pattern are ignored. The comma split has no nested-parenthesis awareness;
// a column type carrying a comma would misparse, which the osm2po dump never
// produces.
func (s *TableSchema) AddFieldsFromCreateTableDDL(ddl string) {
	m := createTableRegex.FindStringSubmatch(ddl)
	if m == nil {
		return
	}
	s.Name = m[1]
	for _, def := range strings.Split(m[2], ",") {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		name, sqlType := splitColumnDef(def)
		s.AddField(name, LookupFieldType(sqlType))
	}
}

// splitColumnDef separates "<name> <sql type>" on the first whitespace run.
// A definition without a type yields an empty type text, which the registry
// resolves to the string fallback.
func splitColumnDef(def string) (string, string) {
	idx := strings.IndexAny(def, " \t")
	if idx == -1 {
		return def, ""
	}
	return def[:idx], strings.TrimSpace(def[idx+1:])
}

// AddGeometryColumnFromDDL scans a PostGIS AddGeometryColumn call and
// registers the named column as hex-WKB decoded to WKT. An existing column
// of the same name keeps its position and gets its converter overwritten.
// The SRID, geometry type, and dimension captures are not validated against
// the row data; only the column name matters here.
func (s *TableSchema) AddGeometryColumnFromDDL(ddl string) {
	m := geometryColumnRegex.FindStringSubmatch(ddl)
	if m == nil {
		return
	}
	s.AddField(m[2], GeometryFieldType())
}

// GeometryFieldType decodes hex-encoded WKB into WKT, dropping the SRID.
// WKT has no slot for it, so stripping is explicit rather than silent.
func GeometryFieldType() FieldType {
	dec := geometry.NewDecoder()
	return NewFieldType(func(raw string) (interface{}, error) {
		return dec.HexToWKT(raw)
	}, "string")
}
