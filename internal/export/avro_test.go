package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linkedin/goavro/v2"
)

func TestWriteAvroRoundTrip(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "roads.avro")
	if err := Write(path, "avro", res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	r, err := goavro.NewOCFReader(f)
	if err != nil {
		t.Fatalf("Failed to open avro container: %v", err)
	}

	var records []map[string]interface{}
	for r.Scan() {
		datum, err := r.Read()
		if err != nil {
			t.Fatalf("Failed to read record: %v", err)
		}
		rec, ok := datum.(map[string]interface{})
		if !ok {
			t.Fatalf("Expected record datum, got %T", datum)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if got := unionValue(t, first["id"], "int"); got != int32(1) {
		t.Errorf("id = %v, want int32 1", got)
	}
	if got := unionValue(t, first["name"], "string"); got != "Main St" {
		t.Errorf("name = %v, want 'Main St'", got)
	}
	if got := unionValue(t, first["cost"], "double"); got != 12.5 {
		t.Errorf("cost = %v, want 12.5", got)
	}

	// Null markers must survive the round trip as nulls, not zero values.
	second := records[1]
	if second["name"] != nil {
		t.Errorf("name = %v, want nil", second["name"])
	}
	if got := unionValue(t, second["cost"], "double"); got != 3.0 {
		t.Errorf("cost = %v, want 3.0", got)
	}
}

// unionValue unwraps goavro's single-entry map form of a non-null union.
func unionValue(t *testing.T, datum interface{}, branch string) interface{} {
	t.Helper()
	m, ok := datum.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected union map, got %T", datum)
	}
	v, ok := m[branch]
	if !ok {
		t.Fatalf("Expected union branch %q, got %v", branch, m)
	}
	return v
}
