package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/routetools/pgrconv/internal/convert"
)

// ErrUnknownFormat is returned for format names outside Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output format names.
var Formats = []string{"csv", "json", "avro", "sqlite"}

// Write hands the conversion result to the writer for format. Every writer
// honors schema column order and keeps null distinct from zero or empty.
func Write(path, format string, res *convert.Result) error {
	switch strings.ToLower(format) {
	case "csv":
		return writeCSV(path, res)
	case "json":
		return writeJSON(path, res)
	case "avro":
		return writeAvro(path, res)
	case "sqlite":
		return writeSQLite(path, res)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// DefaultPath derives the output path from the input path by swapping the
// extension for the format name.
func DefaultPath(inputPath, format string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + strings.ToLower(format)
}
