package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/mcptools"
	"github.com/akarpov/mentora/internal/selfupdate"
	"github.com/akarpov/mentora/internal/store"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: "Serve the mentora tools over the Model Context Protocol for agent\n" +
		"clients. Stdout carries the protocol, so all diagnostics go to stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		s := mcptools.NewServer(version, mcptools.Deps{
			Students:    st.Students(),
			Attempts:    st.Attempts(),
			Assessments: st.Assessments(),
			Progress:    st.Progress(),
			Achievements: achievements.NewService(
				st.Achievements(), st.Attempts(), st.Progress()),
			Graph: curriculum.Default(),
		})

		// Best-effort update notice; network failures stay silent.
		go notifyUpdates()

		fmt.Fprintln(os.Stderr, "mentora MCP server listening on stdio")
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("serve stdio: %w", err)
		}
		return nil
	},
}

func notifyUpdates() {
	if version == "(devel)" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker()
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return
	}
	fmt.Fprintf(os.Stderr, "Update available: %s -> %s (run: mentora update)\n",
		result.CurrentVersion, result.LatestVersion)
}
