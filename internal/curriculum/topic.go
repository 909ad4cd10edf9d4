package curriculum

// Subject represents a curriculum content area.
type Subject string

const (
	SubjectArithmetic Subject = "arithmetic"
	SubjectFractions  Subject = "fractions"
	SubjectDecimals   Subject = "decimals-and-percents"
	SubjectGeometry   Subject = "geometry"
	SubjectAlgebra    Subject = "algebra-foundations"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectArithmetic,
		SubjectFractions,
		SubjectDecimals,
		SubjectGeometry,
		SubjectAlgebra,
	}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectArithmetic:
		return "Arithmetic"
	case SubjectFractions:
		return "Fractions"
	case SubjectDecimals:
		return "Decimals & Percents"
	case SubjectGeometry:
		return "Geometry"
	case SubjectAlgebra:
		return "Algebra Foundations"
	default:
		return string(s)
	}
}

// Difficulty represents a question or topic difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the defined difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const (
	// DefaultDifficulty is assigned to topics declared without one.
	DefaultDifficulty = DifficultyMedium

	// DefaultImportance is assigned to topics declared without one.
	DefaultImportance = 5
)

// Topic represents a single teachable unit in the curriculum graph.
type Topic struct {
	ID            string
	Name          string
	Description   string
	Subject       Subject
	Grade         int
	Difficulty    Difficulty
	Importance    int
	Prerequisites []string
}
