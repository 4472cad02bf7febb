package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/routetools/pgrconv/internal/convert"
)

const sampleDump = `CREATE TABLE roads(id integer, name character varying, cost double precision);
INSERT INTO roads VALUES
(1, 'Main St', 12.5),
(2, 'null', 3.0);
`

func sampleResult(t *testing.T) *convert.Result {
	t.Helper()
	res, err := convert.Parse(strings.NewReader(sampleDump), "null")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return res
}

func TestDefaultPath(t *testing.T) {
	cases := []struct {
		input  string
		format string
		want   string
	}{
		{"roads.sql", "csv", "roads.csv"},
		{"/data/roads.sql", "avro", "/data/roads.avro"},
		{"roads", "json", "roads.json"},
		{"roads.dump.sql", "sqlite", "roads.dump.sqlite"},
	}

	for _, c := range cases {
		if got := DefaultPath(c.input, c.format); got != c.want {
			t.Errorf("DefaultPath(%q, %q) = %q, want %q", c.input, c.format, got, c.want)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out"), "parquet", sampleResult(t))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.csv")
	if err := Write(path, "csv", sampleResult(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"id","name","cost"` {
		t.Errorf("Header = %q", lines[0])
	}
	if lines[1] != `1,"Main St",12.5` {
		t.Errorf("Row 1 = %q", lines[1])
	}
	// Null must come out as a truly empty field, not a quoted empty string.
	if lines[2] != `2,,3` {
		t.Errorf("Row 2 = %q", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.json")
	if err := Write(path, "json", sampleResult(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `{"id":1,"name":"Main St","cost":12.5}` {
		t.Errorf("Line 1 = %q", lines[0])
	}
	if lines[1] != `{"id":2,"name":null,"cost":3}` {
		t.Errorf("Line 2 = %q", lines[1])
	}
}
