package export

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/routetools/pgrconv/internal/convert"
)

// writeCSV writes a header row of column names followed by one line per
// record. Quoting is nonnumeric-style: strings (headers included) are
// always double-quoted, numbers are bare, and null is a truly empty field —
// which keeps null distinguishable from the empty string "".
//
// encoding/csv only does minimal quoting, which would collapse null and ""
// into the same output, so the field formatting is done here.
func writeCSV(path string, res *convert.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	cols := res.Schema.Columns()

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = quoteCSV(col)
	}
	fmt.Fprintln(w, strings.Join(header, ","))

	row := make([]string, len(cols))
	for _, rec := range res.Records {
		for i, col := range cols {
			row[i] = csvField(rec[col])
		}
		fmt.Fprintln(w, strings.Join(row, ","))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write csv output: %w", err)
	}
	return nil
}

func csvField(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return quoteCSV(t)
	default:
		return quoteCSV(fmt.Sprintf("%v", t))
	}
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
