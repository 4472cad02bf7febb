package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routetools/pgrconv/internal/config"
	"github.com/routetools/pgrconv/internal/convert"
	"github.com/routetools/pgrconv/internal/database"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a SQL dump into PostgreSQL",
	Long: `
Parse a pgRouting SQL dump and load it into a PostgreSQL database. The
connection URL is read from the environment variable named by the config
(DATABASE_URL by default). The target table is created from the inferred
schema if it does not exist.

Examples:
  pgrconv load --input roads.sql
  pgrconv load --input roads.sql --table osm_roads`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		input, _ := cmd.Flags().GetString("input")
		table, _ := cmd.Flags().GetString("table")
		if table == "" {
			table = cfg.Database.Table
		}

		res, err := convert.ParseFile(input, cfg.NullToken)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		loader := database.NewPostgresLoader()
		if err := loader.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer loader.Close()

		if err := loader.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := loader.Load(ctx, table, res); err != nil {
			return err
		}

		color.Green("✅ Loaded %d records into PostgreSQL", len(res.Records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringP("input", "i", "", "Path to the pgRouting SQL dump")
	loadCmd.Flags().StringP("table", "t", "", "Target table (default: name captured from CREATE TABLE)")
	loadCmd.MarkFlagRequired("input")
}
