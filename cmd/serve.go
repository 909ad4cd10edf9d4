package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/auth"
	"github.com/akarpov/mentora/internal/config"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/grading"
	"github.com/akarpov/mentora/internal/httpapi"
	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
	"github.com/akarpov/mentora/internal/store"
	"github.com/akarpov/mentora/internal/tutor"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.Println("[STARTUP] mentora API starting...")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			if err := config.EnsureDir(p); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			cfg.DBPath = p
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		log.Printf("[CONFIG] Listen address: %s", cfg.Addr)
		log.Printf("[CONFIG] Database: %s", cfg.DBPath)

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		sessions := auth.NewSessionStore(cfg.SessionTTL)
		defer sessions.Close()

		deps := httpapi.Deps{
			Students:    st.Students(),
			Attempts:    st.Attempts(),
			Assessments: st.Assessments(),
			Progress:    st.Progress(),
			Sessions:    sessions,
			Graph:       curriculum.Default(),
			Grader:      grading.NewService(nil, st.Attempts(), st.Assessments()),
			Achievements: achievements.NewService(
				st.Achievements(), st.Attempts(), st.Progress()),
			Version: version,
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.LLMEvents())
		if err != nil {
			log.Printf("[CONFIG] LLM provider not configured: %v", err)
			log.Println("[CONFIG] Quiz generation, tutoring and the grading judge are disabled.")
		} else {
			log.Printf("[CONFIG] LLM provider: %s (%s)", provider.Name(), provider.ModelID())
			deps.Quizzes = quizgen.New(provider, quizgen.DefaultConfig())
			deps.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
			deps.Grader = grading.NewService(
				grading.NewJudge(provider, grading.DefaultJudgeConfig()),
				st.Attempts(), st.Assessments())
		}

		server := httpapi.NewServer(deps)

		srv := &http.Server{
			Addr:        cfg.Addr,
			Handler:     server.Router(),
			ReadTimeout: 15 * time.Second,
			// LLM-backed routes block on provider calls, so the write
			// timeout outlasts the 30s provider timeout plus retries.
			WriteTimeout: 2 * time.Minute,
			IdleTimeout:  60 * time.Second,
		}

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			log.Println("[SHUTDOWN] Signal received, draining connections...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("[SHUTDOWN] Forced close: %v", err)
			}
		}()

		log.Printf("[STARTUP] Server ready at http://localhost%s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
		log.Println("[SHUTDOWN] Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MENTORA_ADDR)")
}
