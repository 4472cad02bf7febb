package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routetools/pgrconv/internal/config"
	"github.com/routetools/pgrconv/internal/convert"
	"github.com/routetools/pgrconv/internal/export"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a SQL dump to a structured output file",
	Long: `
Convert a pgRouting SQL dump into one of the supported output formats.
The output path defaults to the input path with its extension replaced by
the format name.

Examples:
  pgrconv convert --input roads.sql
  pgrconv convert --input roads.sql --format avro
  pgrconv convert --input roads.sql --format json --output /tmp/roads.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		if output == "" {
			output = export.DefaultPath(input, format)
		}

		res, err := convert.ParseFile(input, cfg.NullToken)
		if err != nil {
			return err
		}
		if err := export.Write(output, format, res); err != nil {
			return err
		}

		color.Green("✅ Converted %d records (%d columns) to %s", len(res.Records), res.Schema.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("input", "i", "", "Path to the pgRouting SQL dump")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default: input path with format extension)")
	convertCmd.Flags().StringP("format", "f", "", "Output format: csv (default), json, avro, sqlite")
	convertCmd.MarkFlagRequired("input")
}
