package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akarpov/mentora/internal/auth"
	"github.com/akarpov/mentora/internal/store"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student accounts",
}

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a student account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		grade, _ := cmd.Flags().GetInt("grade")
		password, _ := cmd.Flags().GetString("password")

		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if grade < 0 || grade > 8 {
			return fmt.Errorf("grade must be between 0 (kindergarten) and 8")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = st.Close() }()

		ctx := context.Background()
		if _, err := st.Students().ByName(ctx, name); err == nil {
			return fmt.Errorf("name %q is already taken", name)
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check name: %w", err)
		}

		rec, err := st.Students().Create(ctx, store.StudentData{
			Name:         name,
			Grade:        grade,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("create student: %w", err)
		}

		fmt.Printf("Created student %s (grade %d)\n", rec.Name, rec.Grade)
		fmt.Printf("Public id: %s\n", rec.PublicID)
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List student accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = st.Close() }()

		students, err := st.Students().List(context.Background())
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		if len(students) == 0 {
			fmt.Println("No students yet. Create one with: mentora student add")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %5s  %s\n", "ID", "Name", "Grade", "Created")
		fmt.Println(strings.Repeat("─", 80))
		for _, s := range students {
			fmt.Printf("%-36s  %-20s  %5d  %s\n",
				s.PublicID, truncate(s.Name, 20), s.Grade,
				s.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Printf("\n%d students\n", len(students))
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	studentAddCmd.Flags().String("name", "", "Login name (required)")
	studentAddCmd.Flags().Int("grade", 3, "Grade level, 0 (kindergarten) through 8")
	studentAddCmd.Flags().String("password", "", "Login password, at least 6 characters (required)")
	_ = studentAddCmd.MarkFlagRequired("name")
	_ = studentAddCmd.MarkFlagRequired("password")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
}
