package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/routetools/pgrconv/internal/schema"
)

// rowRegex captures the literal list of a row line: "(<values>)" optionally
// terminated by ";" or ",". osm2po emits one row per line, so multi-row
// INSERT continuations match too.
var rowRegex = regexp.MustCompile(`^\((.+?)\)[;,]?\s*$`)

// maxLineSize bounds a single dump line. Geometry hex for long ways can run
// to hundreds of kilobytes.
const maxLineSize = 16 * 1024 * 1024

// Result is what one conversion pass produces: the inferred schema and all
// parsed rows, in input order. The schema is no longer mutated once the
// pass returns.
type Result struct {
	Schema  *schema.TableSchema
	Records []schema.Record
}

// ParseFile reads the whole dump at path into memory. See Parse.
func ParseFile(path, nullToken string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return Parse(f, nullToken)
}

// Parse makes a single pass over the dump lines. DDL lines mutate the
// schema, row lines become Records, everything else (headers, comments,
// transaction control) is skipped silently. A line is tested against all
// three shapes independently. The first malformed row or geometry aborts
// the pass; there is no skip-and-continue.
func Parse(r io.Reader, nullToken string) (*Result, error) {
	ts := schema.NewTableSchema()
	ts.SetNullToken(nullToken)

	var records []schema.Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		lower := strings.ToLower(line)

		if strings.HasPrefix(lower, "create table") {
			ts.AddFieldsFromCreateTableDDL(line)
		}
		if strings.HasPrefix(lower, "select addgeometrycolumn") {
			ts.AddGeometryColumnFromDDL(line)
		}
		if m := rowRegex.FindStringSubmatch(line); m != nil {
			if ts.Len() == 0 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrNoSchema)
			}
			rec, err := ParseRow(m[1], ts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return &Result{Schema: ts, Records: records}, nil
}
