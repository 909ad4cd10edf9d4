package store

import (
	"context"
	"errors"
	"time"

	"github.com/akarpov/mentora/internal/adaptive"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Attempt sources. Assessments append attempt events too, so that graded
// assessments move mastery the same way practice does.
const (
	SourcePractice   = "practice"
	SourceAssessment = "assessment"
)

// StudentData carries the fields needed to create a student.
type StudentData struct {
	Name         string
	Grade        int
	PasswordHash string
}

// StudentRecord is a student row as the rest of the service sees it.
type StudentRecord struct {
	ID           int
	PublicID     string
	Name         string
	Grade        int
	PasswordHash string
	CreatedAt    time.Time
}

// StudentRepo manages student accounts.
type StudentRepo interface {
	// Create inserts a new student and assigns its public id.
	Create(ctx context.Context, data StudentData) (*StudentRecord, error)

	// ByPublicID returns the student with the given public id.
	// Wraps ErrNotFound when no such student exists.
	ByPublicID(ctx context.Context, publicID string) (*StudentRecord, error)

	// ByName returns the student with the given login name.
	// Wraps ErrNotFound when no such student exists.
	ByName(ctx context.Context, name string) (*StudentRecord, error)

	// List returns all students, oldest account first.
	List(ctx context.Context) ([]StudentRecord, error)
}

// AttemptEventData captures one graded batch of questions on a topic.
type AttemptEventData struct {
	StudentID string
	TopicID   string
	Correct   int
	Total     int
	Minutes   int
	Source    string
}

// AttemptRecord is a stored attempt event.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	StudentID string
	TopicID   string
	Correct   int
	Total     int
	Minutes   int
	Source    string
}

// AttemptRepo appends and reads the attempt log.
type AttemptRepo interface {
	// Append records an attempt event with the next global sequence.
	Append(ctx context.Context, data AttemptEventData) error

	// ListByStudent returns all of a student's attempts in sequence order.
	ListByStudent(ctx context.Context, studentID string) ([]AttemptRecord, error)

	// ListByStudentTopic returns a student's attempts on one topic in
	// sequence order.
	ListByStudentTopic(ctx context.Context, studentID, topicID string) ([]AttemptRecord, error)
}

// AssessmentEventData captures one completed, graded assessment.
type AssessmentEventData struct {
	StudentID      string
	AssessmentID   string
	TopicIDs       []string
	Score          int
	TotalQuestions int
	Results        []adaptive.QuestionResult
}

// AssessmentRecord is a stored assessment event.
type AssessmentRecord struct {
	Sequence       int64
	Timestamp      time.Time
	StudentID      string
	AssessmentID   string
	TopicIDs       []string
	Score          int
	TotalQuestions int
	Results        []adaptive.QuestionResult
}

// AssessmentRepo appends and reads graded assessments.
type AssessmentRepo interface {
	// Append records an assessment event with the next global sequence.
	Append(ctx context.Context, data AssessmentEventData) error

	// ListByStudent returns a student's assessments newest first.
	// A limit of 0 returns all of them.
	ListByStudent(ctx context.Context, studentID string, limit int) ([]AssessmentRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	DurationMs   int64
	Success      bool
	ErrorKind    string
}

// LLMEventRepo appends LLM request events for cost tracking.
type LLMEventRepo interface {
	// Append records an LLM API call event.
	Append(ctx context.Context, data LLMRequestEventData) error
}

// AchievementRecord is a stored achievement unlock.
type AchievementRecord struct {
	AchievementID string
	Sequence      int64
	Timestamp     time.Time
}

// AchievementRepo appends and reads achievement unlocks.
type AchievementRepo interface {
	// Append records an unlock event. Callers are expected to check
	// ListByStudent first; the store does not dedupe.
	Append(ctx context.Context, studentID, achievementID string) error

	// ListByStudent returns a student's unlocks in sequence order.
	ListByStudent(ctx context.Context, studentID string) ([]AchievementRecord, error)
}

// ProgressReader assembles adaptive-core inputs from the attempt log.
type ProgressReader interface {
	// Progress groups a student's attempt events by topic, each topic's
	// attempts in global sequence order, with study minutes summed into
	// TimeSpent.
	Progress(ctx context.Context, studentID string) (adaptive.StudentProgress, error)

	// TopicAttempts returns the ordered attempt history for one topic.
	TopicAttempts(ctx context.Context, studentID, topicID string) ([]adaptive.Attempt, error)
}
