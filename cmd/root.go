package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "psyche",
	Short: "Personality assessments and symbolic charts in your terminal",
	Long:  "Psyche — terminal app for taking personality, archetype, and cognitive assessments, with symbolic birth-chart readings alongside.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	// Pick up API keys from a local .env if present.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PSYCHE_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PSYCHE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("PSYCHE_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// profilePathFor returns the birth-profile JSON path, kept next to the
// database so reset can clear both.
func profilePathFor(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "profile.json")
}
