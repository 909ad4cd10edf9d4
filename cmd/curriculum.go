package cmd

import (
	"fmt"
	"strings"

	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/spf13/cobra"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Browse the built-in curriculum",
}

var curriculumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics (optionally filtered by subject or grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetInt("grade")

		graph := curriculum.Default()

		var topics []curriculum.Topic
		switch {
		case subject != "" && grade >= 0:
			return fmt.Errorf("use --subject or --grade, not both")
		case subject != "":
			topics = graph.BySubject(curriculum.Subject(subject))
			if len(topics) == 0 {
				return fmt.Errorf("no topics found for subject %q", subject)
			}
		case grade >= 0:
			for _, t := range graph.Topics() {
				if t.Grade == grade {
					topics = append(topics, t)
				}
			}
			if len(topics) == 0 {
				return fmt.Errorf("no topics found for grade %d", grade)
			}
		default:
			topics = graph.Topics()
		}

		fmt.Printf("%-26s  %-34s  %5s  %-22s  %-6s  %3s\n",
			"ID", "Name", "Grade", "Subject", "Diff", "Imp")
		fmt.Println(strings.Repeat("─", 108))

		for _, t := range topics {
			name := t.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			fmt.Printf("%-26s  %-34s  %5d  %-22s  %-6s  %3d\n",
				t.ID, name, t.Grade,
				curriculum.SubjectDisplayName(t.Subject), t.Difficulty, t.Importance)
		}

		fmt.Printf("\n%d topics\n", len(topics))
		return nil
	},
}

var curriculumValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the curriculum graph for unknown or cyclic prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := curriculum.Default()
		if err := graph.Validate(); err != nil {
			return fmt.Errorf("curriculum invalid: %w", err)
		}
		fmt.Printf("Curriculum OK: %d topics, %d roots, all prerequisites resolve, no cycles.\n",
			graph.Len(), len(graph.Roots()))
		return nil
	},
}

func init() {
	curriculumListCmd.Flags().String("subject", "", "Filter by subject (e.g. fractions)")
	curriculumListCmd.Flags().Int("grade", -1, "Filter by grade level, 0 (kindergarten) through 8")

	curriculumCmd.AddCommand(curriculumListCmd)
	curriculumCmd.AddCommand(curriculumValidateCmd)
}
