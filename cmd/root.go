package cmd

import (
	"os"

	"github.com/akarpov/mentora/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mentora",
	Short: "Adaptive math tutoring service",
	Long: "Mentora - adaptive tutoring service that tracks K-8 math mastery\n" +
		"from practice history and serves personalized recommendations,\n" +
		"quizzes and explanations over HTTP and MCP.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENTORA_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then MENTORA_DB, then the default user-config-dir path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, config.EnsureDir(p)
	}
	if p := os.Getenv("MENTORA_DB"); p != "" {
		return p, config.EnsureDir(p)
	}
	return config.DefaultDBPath()
}
