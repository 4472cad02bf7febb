package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/routetools/pgrconv/internal/convert"
	"github.com/routetools/pgrconv/internal/schema"
)

// writeJSON emits line-delimited JSON, one object per record. Objects are
// assembled by hand so fields come out in schema order; marshalling the
// Record map directly would sort keys alphabetically.
func writeJSON(path string, res *convert.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create json output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	cols := res.Schema.Columns()
	for _, rec := range res.Records {
		line, err := marshalOrdered(rec, cols)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		w.Write(line)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write json output: %w", err)
	}
	return nil
}

func marshalOrdered(rec schema.Record, cols []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(rec[col])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
