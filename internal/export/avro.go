package export

import (
	"fmt"
	"os"

	"github.com/linkedin/goavro/v2"
	"github.com/routetools/pgrconv/internal/convert"
)

// writeAvro writes an Avro object-container file with the record schema
// embedded, so readers recover both types and null markers without any
// side channel.
func writeAvro(path string, res *convert.Result) error {
	avroSchema, err := res.Schema.AvroSchema()
	if err != nil {
		return fmt.Errorf("failed to build avro schema: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create avro output: %w", err)
	}
	defer f.Close()

	w, err := goavro.NewOCFWriter(goavro.OCFConfig{W: f, Schema: avroSchema})
	if err != nil {
		return fmt.Errorf("failed to open avro container: %w", err)
	}

	cols := res.Schema.Columns()
	native := make([]interface{}, 0, len(res.Records))
	for _, rec := range res.Records {
		datum := make(map[string]interface{}, len(cols))
		for _, col := range cols {
			v := rec[col]
			if v == nil {
				datum[col] = nil
				continue
			}
			// goavro's native form for a ["null", T] union wraps the
			// value in a single-entry map keyed by the branch name.
			datum[col] = map[string]interface{}{res.Schema.FieldType(col).AvroType(): v}
		}
		native = append(native, datum)
	}

	if err := w.Append(native); err != nil {
		return fmt.Errorf("failed to append avro records: %w", err)
	}
	return nil
}
