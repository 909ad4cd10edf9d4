// Package mcptools exposes the adaptive-learning core over the Model
// Context Protocol, so agent clients on the stdio transport can read a
// student's progress and log practice on their behalf. Students are
// addressed by public id, and every tool answers with readable markdown.
package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/store"
)

// Deps carries the stores and curriculum the tools read.
type Deps struct {
	Students     store.StudentRepo
	Attempts     store.AttemptRepo
	Assessments  store.AssessmentRepo
	Progress     store.ProgressReader
	Achievements *achievements.Service
	Graph        *curriculum.Graph
}

// NewServer builds the MCP server with every tool registered.
func NewServer(version string, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"mentora",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	RegisterAll(s, deps)
	return s
}

// RegisterAll adds every mentora tool to the server.
func RegisterAll(s *server.MCPServer, deps Deps) {
	next := NewNextTopicTool(deps.Students, deps.Progress, deps.Graph)
	s.AddTool(next.Definition(), next.Handle)

	mastery := NewMasteryTool(deps.Students, deps.Progress, deps.Graph)
	s.AddTool(mastery.Definition(), mastery.Handle)

	path := NewLearningPathTool(deps.Students, deps.Progress, deps.Graph)
	s.AddTool(path.Definition(), path.Handle)

	gaps := NewGapReportTool(deps.Students, deps.Assessments)
	s.AddTool(gaps.Definition(), gaps.Handle)

	logAttempt := NewLogAttemptTool(deps.Students, deps.Attempts, deps.Progress, deps.Achievements, deps.Graph)
	s.AddTool(logAttempt.Definition(), logAttempt.Handle)
}

const instructions = `Mentora tracks a student's mastery of K-8 math topics from their
practice history. Use get_next_topic to decide what to teach next,
get_mastery to see where the student stands, get_gap_report after graded
assessments to find weak spots, and get_learning_path to plan study over
a timeframe. When the student finishes a practice set, record it with
log_attempt so mastery stays current. Students are addressed by the
public id they log in with.`

func studentParam() mcp.ToolOption {
	return mcp.WithString("student",
		mcp.Required(),
		mcp.Description("The student's public id"),
	)
}

// resolveStudent looks up the addressed student. The second return value
// is a ready error result when the lookup fails.
func resolveStudent(ctx context.Context, repo store.StudentRepo, req mcp.CallToolRequest) (*store.StudentRecord, *mcp.CallToolResult) {
	publicID := req.GetString("student", "")
	if publicID == "" {
		return nil, mcp.NewToolResultError("'student' is required")
	}
	rec, err := repo.ByPublicID(ctx, publicID)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("look up student %q: %v", publicID, err))
	}
	return rec, nil
}

// topicLabel prefers the curriculum display name for a topic id.
func topicLabel(graph *curriculum.Graph, id string) string {
	if t, ok := graph.Topic(id); ok {
		return t.Name
	}
	return id
}

// NextTopicTool handles the get_next_topic MCP tool.
type NextTopicTool struct {
	students store.StudentRepo
	progress store.ProgressReader
	graph    *curriculum.Graph
}

func NewNextTopicTool(students store.StudentRepo, progress store.ProgressReader, graph *curriculum.Graph) *NextTopicTool {
	return &NextTopicTool{students: students, progress: progress, graph: graph}
}

func (t *NextTopicTool) Definition() mcp.Tool {
	return mcp.NewTool("get_next_topic",
		mcp.WithDescription(
			"Recommend the single best topic for the student to study next, "+
				"based on prerequisites, current mastery and topic importance. "+
				"Call again after every graded attempt: the recommendation moves with mastery.",
		),
		studentParam(),
	)
}

func (t *NextTopicTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, errResult := resolveStudent(ctx, t.students, req)
	if errResult != nil {
		return errResult, nil
	}
	prog, err := t.progress.Progress(ctx, rec.PublicID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read progress: %v", err)), nil
	}

	next := adaptive.NextTopic(prog, t.graph)
	if next == nil {
		return mcp.NewToolResultText(
			"No recommendation available: every unlocked topic is already mastered.",
		), nil
	}

	var sb strings.Builder
	sb.WriteString("## Next Topic\n\n")
	fmt.Fprintf(&sb, "**%s** (%s)\n", topicLabel(t.graph, next.Topic), next.Topic)
	fmt.Fprintf(&sb, "- Suggested difficulty: %s\n", next.Difficulty)
	fmt.Fprintf(&sb, "- Importance: %d/10\n", next.Importance)
	fmt.Fprintf(&sb, "- Current mastery: %d (%s)\n", next.CurrentMastery, next.Status)
	return mcp.NewToolResultText(sb.String()), nil
}

// MasteryTool handles the get_mastery MCP tool.
type MasteryTool struct {
	students store.StudentRepo
	progress store.ProgressReader
	graph    *curriculum.Graph
}

func NewMasteryTool(students store.StudentRepo, progress store.ProgressReader, graph *curriculum.Graph) *MasteryTool {
	return &MasteryTool{students: students, progress: progress, graph: graph}
}

func (t *MasteryTool) Definition() mcp.Tool {
	return mcp.NewTool("get_mastery",
		mcp.WithDescription(
			"Report the student's mastery level, status and attempt count. "+
				"Covers the whole curriculum, or one topic when 'topic' is given.",
		),
		studentParam(),
		mcp.WithString("topic",
			mcp.Description("Limit the report to this topic id"),
		),
	)
}

func (t *MasteryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, errResult := resolveStudent(ctx, t.students, req)
	if errResult != nil {
		return errResult, nil
	}

	if topicID := req.GetString("topic", ""); topicID != "" {
		topic, ok := t.graph.Topic(topicID)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q", topicID)), nil
		}
		attempts, err := t.progress.TopicAttempts(ctx, rec.PublicID, topic.ID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("read attempts: %v", err)), nil
		}
		res := adaptive.ComputeMastery(attempts)

		var sb strings.Builder
		fmt.Fprintf(&sb, "## Mastery: %s\n\n", topic.Name)
		fmt.Fprintf(&sb, "- Level: %d/100 (%s)\n", res.Level, res.Status)
		fmt.Fprintf(&sb, "- Confidence: %.1f\n", res.Confidence)
		fmt.Fprintf(&sb, "- Attempts: %d\n", res.TotalAttempts)
		fmt.Fprintf(&sb, "- Recent accuracy: %.0f%%\n", res.RecentAccuracy*100)
		return mcp.NewToolResultText(sb.String()), nil
	}

	prog, err := t.progress.Progress(ctx, rec.PublicID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read progress: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Mastery: %s\n\n", rec.Name)
	for _, topic := range t.graph.Topics() {
		res := adaptive.ComputeMastery(prog[topic.ID].Attempts)
		fmt.Fprintf(&sb, "- %s: %d/100 (%s), %d attempts\n",
			topic.Name, res.Level, res.Status, res.TotalAttempts)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// LearningPathTool handles the get_learning_path MCP tool.
type LearningPathTool struct {
	students store.StudentRepo
	progress store.ProgressReader
	graph    *curriculum.Graph
}

func NewLearningPathTool(students store.StudentRepo, progress store.ProgressReader, graph *curriculum.Graph) *LearningPathTool {
	return &LearningPathTool{students: students, progress: progress, graph: graph}
}

func (t *LearningPathTool) Definition() mcp.Tool {
	return mcp.NewTool("get_learning_path",
		mcp.WithDescription(
			"Build a phased study plan with a day-by-day schedule. Targets the "+
				"given topics, or the next recommended topic when none are given.",
		),
		studentParam(),
		mcp.WithNumber("timeframe_days",
			mcp.Description("Length of the plan in days (default 30)"),
		),
		mcp.WithNumber("daily_minutes",
			mcp.Description("Study minutes per day (default 30)"),
		),
		mcp.WithString("topics",
			mcp.Description("Comma-separated topic ids to target"),
		),
	)
}

func (t *LearningPathTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, errResult := resolveStudent(ctx, t.students, req)
	if errResult != nil {
		return errResult, nil
	}

	var targets []string
	for _, id := range strings.Split(req.GetString("topics", ""), ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := t.graph.Topic(id); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q", id)), nil
		}
		targets = append(targets, id)
	}

	prog, err := t.progress.Progress(ctx, rec.PublicID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read progress: %v", err)), nil
	}

	path := adaptive.GeneratePath(adaptive.PathRequest{
		Progress:      prog,
		Graph:         t.graph,
		TargetTopics:  targets,
		TimeframeDays: int(req.GetFloat("timeframe_days", 0)),
		DailyMinutes:  int(req.GetFloat("daily_minutes", 0)),
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Learning Path (%d days)\n\n", path.EstimatedDuration)
	for _, phase := range path.Phases {
		fmt.Fprintf(&sb, "### Phase %d (%d days)\n", phase.Phase, phase.Duration)
		if len(phase.Topics) == 0 {
			sb.WriteString("No target topics: the curriculum is fully mastered.\n\n")
			continue
		}
		labels := make([]string, len(phase.Topics))
		for i, id := range phase.Topics {
			labels[i] = topicLabel(t.graph, id)
		}
		fmt.Fprintf(&sb, "Topics: %s\n", strings.Join(labels, ", "))
		for _, goal := range phase.Goals {
			fmt.Fprintf(&sb, "- %s\n", goal)
		}
		sb.WriteString("\n")
	}
	if len(path.DailySchedule) > 0 {
		day := path.DailySchedule[0]
		parts := make([]string, len(day.Activities))
		for i, act := range day.Activities {
			parts[i] = fmt.Sprintf("%d min %s", act.Minutes, act.Kind)
		}
		fmt.Fprintf(&sb, "Each day allocates %d minutes: %s.\n",
			day.TimeAllocated, strings.Join(parts, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// GapReportTool handles the get_gap_report MCP tool.
type GapReportTool struct {
	students    store.StudentRepo
	assessments store.AssessmentRepo
}

func NewGapReportTool(students store.StudentRepo, assessments store.AssessmentRepo) *GapReportTool {
	return &GapReportTool{students: students, assessments: assessments}
}

func (t *GapReportTool) Definition() mcp.Tool {
	return mcp.NewTool("get_gap_report",
		mcp.WithDescription(
			"Analyze the student's graded assessments and report topics below "+
				"70% accuracy, ranked by severity, with the missed questions.",
		),
		studentParam(),
	)
}

func (t *GapReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, errResult := resolveStudent(ctx, t.students, req)
	if errResult != nil {
		return errResult, nil
	}
	records, err := t.assessments.ListByStudent(ctx, rec.PublicID, 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list assessments: %v", err)), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText(
			fmt.Sprintf("No assessments on file for %s yet. Grade a quiz first.", rec.Name),
		), nil
	}

	// Stored newest first; the analyzer wants chronological order.
	results := make([]adaptive.AssessmentResult, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		results = append(results, adaptive.AssessmentResult{
			Results:        records[i].Results,
			Score:          records[i].Score,
			TotalQuestions: records[i].TotalQuestions,
		})
	}
	gaps := adaptive.IdentifyGaps(results)
	if len(gaps) == 0 {
		return mcp.NewToolResultText(
			fmt.Sprintf("No learning gaps across %d assessment(s): every topic is at or above 70%% accuracy.", len(records)),
		), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Learning Gaps (%d assessments analyzed)\n\n", len(records))
	for _, gap := range gaps {
		fmt.Fprintf(&sb, "### %s [%s]\n", gap.Topic, gap.Severity)
		fmt.Fprintf(&sb, "- Accuracy: %d%% (%d of %d incorrect)\n",
			gap.Accuracy, gap.IncorrectCount, gap.TotalQuestions)
		fmt.Fprintf(&sb, "- %s\n", gap.Recommendation)
		for _, e := range gap.CommonErrors {
			fmt.Fprintf(&sb, "- Missed %q: answered %q, correct %q\n",
				e.Question, e.StudentAnswer, e.CorrectAnswer)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// LogAttemptTool handles the log_attempt MCP tool.
type LogAttemptTool struct {
	students store.StudentRepo
	attempts store.AttemptRepo
	progress store.ProgressReader
	badges   *achievements.Service
	graph    *curriculum.Graph
}

func NewLogAttemptTool(students store.StudentRepo, attempts store.AttemptRepo, progress store.ProgressReader, badges *achievements.Service, graph *curriculum.Graph) *LogAttemptTool {
	return &LogAttemptTool{students: students, attempts: attempts, progress: progress, badges: badges, graph: graph}
}

func (t *LogAttemptTool) Definition() mcp.Tool {
	return mcp.NewTool("log_attempt",
		mcp.WithDescription(
			"Record a graded practice batch for a topic so mastery stays "+
				"current. Reports the updated mastery and any badges it unlocked.",
		),
		studentParam(),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic id that was practiced"),
		),
		mcp.WithNumber("correct",
			mcp.Required(),
			mcp.Description("How many questions were answered correctly"),
		),
		mcp.WithNumber("total",
			mcp.Required(),
			mcp.Description("How many questions were in the batch"),
		),
		mcp.WithNumber("minutes",
			mcp.Description("Minutes spent on the batch"),
		),
	)
}

func (t *LogAttemptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, errResult := resolveStudent(ctx, t.students, req)
	if errResult != nil {
		return errResult, nil
	}
	topic, ok := t.graph.Topic(req.GetString("topic", ""))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q", req.GetString("topic", ""))), nil
	}

	correct := int(req.GetFloat("correct", -1))
	total := int(req.GetFloat("total", 0))
	minutes := int(req.GetFloat("minutes", 0))
	if total <= 0 {
		return mcp.NewToolResultError("'total' must be a positive number"), nil
	}
	if correct < 0 || correct > total {
		return mcp.NewToolResultError("'correct' must be between 0 and 'total'"), nil
	}
	if minutes < 0 {
		return mcp.NewToolResultError("'minutes' cannot be negative"), nil
	}

	err := t.attempts.Append(ctx, store.AttemptEventData{
		StudentID: rec.PublicID,
		TopicID:   topic.ID,
		Correct:   correct,
		Total:     total,
		Minutes:   minutes,
		Source:    store.SourcePractice,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("record attempt: %v", err)), nil
	}

	attempts, err := t.progress.TopicAttempts(ctx, rec.PublicID, topic.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read attempts: %v", err)), nil
	}
	res := adaptive.ComputeMastery(attempts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Recorded %d/%d on %s (%d minutes).\n", correct, total, topic.Name, minutes)
	fmt.Fprintf(&sb, "Mastery is now %d/100 (%s) after %d attempts.\n", res.Level, res.Status, res.TotalAttempts)

	if t.badges != nil {
		unlocked, err := t.badges.Refresh(ctx, rec.PublicID, time.Now())
		if err == nil {
			for _, a := range unlocked {
				fmt.Fprintf(&sb, "New badge unlocked: %s!\n", a.Name)
			}
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}
