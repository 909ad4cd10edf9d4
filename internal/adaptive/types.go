// Package adaptive contains the mastery-estimation and study-planning core:
// pure functions that turn attempt histories into mastery scores, topic
// recommendations, difficulty choices, learning paths, gap reports and
// velocity estimates. Nothing here performs I/O or holds state; every
// function reads only its arguments and may be called concurrently.
package adaptive

import (
	"time"

	"github.com/akarpov/mentora/internal/curriculum"
)

// Status labels a mastery level band.
type Status string

const (
	StatusNotStarted   Status = "not-started"
	StatusNeedsSupport Status = "needs-support"
	StatusStruggling   Status = "struggling"
	StatusDeveloping   Status = "developing"
	StatusProficient   Status = "proficient"
	StatusMastered     Status = "mastered"
)

// Attempt is one recorded practice or assessment event for a topic.
// Attempts are immutable once recorded. Sequence position, not the
// timestamp value, is the recency signal: callers supply attempts in
// chronological order.
type Attempt struct {
	Correct   int
	Total     int
	Timestamp time.Time
}

// Accuracy returns Correct/Total, or 0 when Total is not positive.
func (a Attempt) Accuracy() float64 {
	if a.Total <= 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// MasteryResult is the derived mastery picture for one topic. It is
// recomputed from the attempt sequence on every call and never cached.
type MasteryResult struct {
	Level          int     `json:"level"`
	Status         Status  `json:"status"`
	Confidence     float64 `json:"confidence"`
	TotalAttempts  int     `json:"total_attempts"`
	RecentAccuracy float64 `json:"recent_accuracy"`
}

// TopicProgress is a student's recorded history for one topic.
type TopicProgress struct {
	Attempts  []Attempt
	TimeSpent int // minutes
}

// StudentProgress maps topic IDs to recorded histories. The adaptive core
// only ever reads it; the progress store is the sole writer.
type StudentProgress map[string]TopicProgress

// TopicRecommendation is the Topic Selector's answer: the single best next
// topic to study right now.
type TopicRecommendation struct {
	Topic          string                `json:"topic"`
	Difficulty     curriculum.Difficulty `json:"difficulty"`
	Importance     int                   `json:"importance"`
	CurrentMastery int                   `json:"current_mastery"`
	Status         Status                `json:"status"`
}

// ActivityKind labels one block of a day's study plan.
type ActivityKind string

const (
	ActivityReview   ActivityKind = "review"
	ActivityLearn    ActivityKind = "learn"
	ActivityPractice ActivityKind = "practice"
)

// DayActivity is one timed block inside a scheduled day.
type DayActivity struct {
	Kind    ActivityKind `json:"kind"`
	Minutes int          `json:"minutes"`
}

// Phase groups a slice of target topics with goals and milestones.
type Phase struct {
	Phase      int      `json:"phase"`
	Duration   int      `json:"duration_days"`
	Topics     []string `json:"topics"`
	Goals      []string `json:"goals"`
	Activities []string `json:"activities"`
	Milestones []string `json:"milestones"`
}

// DaySchedule assigns one calendar day to a phase with a time budget.
type DaySchedule struct {
	Day           int           `json:"day"`
	Phase         int           `json:"phase"`
	Topics        []string      `json:"topics"`
	TimeAllocated int           `json:"time_allocated"`
	Activities    []DayActivity `json:"activities"`
}

// LearningPath is a complete phased study plan. Built fresh on every
// generation call, never incrementally mutated.
type LearningPath struct {
	Phases            []Phase       `json:"phases"`
	EstimatedDuration int           `json:"estimated_duration_days"`
	DailySchedule     []DaySchedule `json:"daily_schedule"`
}

// Severity ranks how urgent a learning gap is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// AnswerRecord captures one incorrectly answered question for gap reporting.
type AnswerRecord struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// LearningGap is one below-threshold topic with evidence and a suggested
// next step.
type LearningGap struct {
	Topic          string         `json:"topic"`
	Severity       Severity       `json:"severity"`
	Accuracy       int            `json:"accuracy"`
	TotalQuestions int            `json:"total_questions"`
	IncorrectCount int            `json:"incorrect_count"`
	CommonErrors   []AnswerRecord `json:"common_errors"`
	Recommendation string         `json:"recommendation"`
}

// QuestionResult is one graded question inside an assessment.
type QuestionResult struct {
	Topic         string `json:"topic"`
	IsCorrect     bool   `json:"is_correct"`
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// AssessmentResult is a graded assessment as produced by the grading
// service.
type AssessmentResult struct {
	Results        []QuestionResult `json:"results"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
}

// Pace labels a learning velocity band.
type Pace string

const (
	PaceFast   Pace = "fast"
	PaceSteady Pace = "steady"
	PaceSlow   Pace = "slow"
)

// VelocityReport summarizes study activity over a trailing window.
type VelocityReport struct {
	TopicsPerWeek  float64 `json:"topics_per_week"`
	TopicsStarted  int     `json:"topics_started"`
	TopicsMastered int     `json:"topics_mastered"`
	TimeSpent      int     `json:"time_spent"`
	Pace           Pace    `json:"pace"`
}
