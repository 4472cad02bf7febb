package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/routetools/pgrconv/internal/config"
	"github.com/routetools/pgrconv/internal/convert"
)

type columnInfo struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

type schemaInfo struct {
	Table   string       `yaml:"table"`
	Rows    int          `yaml:"rows"`
	Columns []columnInfo `yaml:"columns"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the schema inferred from a SQL dump",
	Long: `
Parse a pgRouting SQL dump and print the inferred column schema as YAML:
column names in declaration order, each with its structured type tag.

Example:
  pgrconv inspect --input roads.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		input, _ := cmd.Flags().GetString("input")
		res, err := convert.ParseFile(input, cfg.NullToken)
		if err != nil {
			return err
		}

		info := schemaInfo{Table: res.Schema.Name, Rows: len(res.Records)}
		for _, col := range res.Schema.Columns() {
			info.Columns = append(info.Columns, columnInfo{
				Name:     col,
				Type:     res.Schema.FieldType(col).AvroType(),
				Nullable: true,
			})
		}

		out, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		os.Stdout.Write(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("input", "i", "", "Path to the pgRouting SQL dump")
	inspectCmd.MarkFlagRequired("input")
}
