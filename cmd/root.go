package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "pgrconv",
	Short: "Convert pgRouting SQL dumps to structured formats",
	Long: `
pgrconv converts a pgRouting SQL dump (as exported by osm2po) into
structured output: CSV, line-delimited JSON, an Avro container file, or a
SQLite database. It can also load the dump straight into PostgreSQL.

The table schema is inferred from the CREATE TABLE and AddGeometryColumn
statements in the dump; geometry columns arrive as hex-encoded WKB and are
decoded to WKT.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("pgrconv version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pgrconv.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("pgrconv.config")
	}

	viper.SetEnvPrefix("PGRCONV")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
