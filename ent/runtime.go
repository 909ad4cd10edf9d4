// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akarpov/mentora/ent/achievementevent"
	"github.com/akarpov/mentora/ent/assessmentevent"
	"github.com/akarpov/mentora/ent/attemptevent"
	"github.com/akarpov/mentora/ent/llmrequestevent"
	"github.com/akarpov/mentora/ent/schema"
	"github.com/akarpov/mentora/ent/student"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescStudentID is the schema descriptor for student_id field.
	achievementeventDescStudentID := achievementeventFields[0].Descriptor()
	// achievementevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	achievementevent.StudentIDValidator = achievementeventDescStudentID.Validators[0].(func(string) error)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[1].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescStudentID is the schema descriptor for student_id field.
	assessmenteventDescStudentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	assessmentevent.StudentIDValidator = assessmenteventDescStudentID.Validators[0].(func(string) error)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[1].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultScore holds the default value on creation for the score field.
	assessmentevent.DefaultScore = assessmenteventDescScore.Default.(int)
	// assessmenteventDescTotalQuestions is the schema descriptor for total_questions field.
	assessmenteventDescTotalQuestions := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	assessmentevent.DefaultTotalQuestions = assessmenteventDescTotalQuestions.Default.(int)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescStudentID is the schema descriptor for student_id field.
	attempteventDescStudentID := attempteventFields[0].Descriptor()
	// attemptevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	attemptevent.StudentIDValidator = attempteventDescStudentID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[1].Descriptor()
	// attemptevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	attemptevent.TopicIDValidator = attempteventDescTopicID.Validators[0].(func(string) error)
	// attempteventDescMinutes is the schema descriptor for minutes field.
	attempteventDescMinutes := attempteventFields[4].Descriptor()
	// attemptevent.DefaultMinutes holds the default value on creation for the minutes field.
	attemptevent.DefaultMinutes = attempteventDescMinutes.Default.(int)
	// attempteventDescSource is the schema descriptor for source field.
	attempteventDescSource := attempteventFields[5].Descriptor()
	// attemptevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	attemptevent.SourceValidator = attempteventDescSource.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescDurationMs is the schema descriptor for duration_ms field.
	llmrequesteventDescDurationMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	llmrequestevent.DefaultDurationMs = llmrequesteventDescDurationMs.Default.(int64)
	// llmrequesteventDescErrorKind is the schema descriptor for error_kind field.
	llmrequesteventDescErrorKind := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	llmrequestevent.DefaultErrorKind = llmrequesteventDescErrorKind.Default.(string)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescPublicID is the schema descriptor for public_id field.
	studentDescPublicID := studentFields[0].Descriptor()
	// student.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	student.PublicIDValidator = studentDescPublicID.Validators[0].(func(string) error)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[1].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescGrade is the schema descriptor for grade field.
	studentDescGrade := studentFields[2].Descriptor()
	// student.DefaultGrade holds the default value on creation for the grade field.
	student.DefaultGrade = studentDescGrade.Default.(int)
	// studentDescPasswordHash is the schema descriptor for password_hash field.
	studentDescPasswordHash := studentFields[3].Descriptor()
	// student.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	student.PasswordHashValidator = studentDescPasswordHash.Validators[0].(func(string) error)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[4].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
}
