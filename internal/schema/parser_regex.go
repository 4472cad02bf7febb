package schema

import (
	"regexp"
)

// Precompiled statement patterns. The dump grammar is line-oriented: each
// statement the builder cares about fits on one line, so these are the whole
// parser. Statement keywords in CREATE TABLE are matched case-sensitively
// (osm2po emits them uppercase); AddGeometryColumn is matched
// case-insensitively like the driver's prefix dispatch.
var (
	createTableRegex = regexp.MustCompile(`^CREATE TABLE (.+?)\((.+?)\)[;,]?\s*$`)

	geometryColumnRegex = regexp.MustCompile(
		`(?i)^SELECT AddGeometryColumn\(` +
			`'(.+?)'` + // table name
			`, '(.+?)'` + // column name
			`, (\d+)` + // srid
			`, '(.+?)'` + // geometry type
			`, (\d+)` + // dimension
			`\);\s*$`,
	)
)
