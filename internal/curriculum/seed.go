package curriculum

import "sync"

// Default returns the built-in K-8 math curriculum. The graph is built once
// and shared; callers must treat it as read-only.
var Default = sync.OnceValue(func() *Graph {
	return MustNew(defaultTopics)
})

// defaultTopics is the built-in curriculum, declared in teaching order.
// Declaration order is meaningful: it is the deterministic tiebreak for
// topic selection.
var defaultTopics = []Topic{
	// Arithmetic
	{
		ID:          "counting-place-value",
		Name:        "Counting & Place Value",
		Description: "Read, write and compare whole numbers using place value.",
		Subject:     SubjectArithmetic,
		Grade:       3,
		Difficulty:  DifficultyEasy,
		Importance:  10,
	},
	{
		ID:            "addition-basics",
		Name:          "Addition",
		Description:   "Multi-digit addition with regrouping.",
		Subject:       SubjectArithmetic,
		Grade:         3,
		Difficulty:    DifficultyEasy,
		Importance:    10,
		Prerequisites: []string{"counting-place-value"},
	},
	{
		ID:            "subtraction-basics",
		Name:          "Subtraction",
		Description:   "Multi-digit subtraction with borrowing.",
		Subject:       SubjectArithmetic,
		Grade:         3,
		Difficulty:    DifficultyEasy,
		Importance:    10,
		Prerequisites: []string{"counting-place-value"},
	},
	{
		ID:            "multiplication-tables",
		Name:          "Multiplication",
		Description:   "Times tables through 12 and multi-digit products.",
		Subject:       SubjectArithmetic,
		Grade:         3,
		Difficulty:    DifficultyMedium,
		Importance:    9,
		Prerequisites: []string{"addition-basics"},
	},
	{
		ID:            "division-basics",
		Name:          "Division",
		Description:   "Division facts, long division and remainders.",
		Subject:       SubjectArithmetic,
		Grade:         4,
		Difficulty:    DifficultyMedium,
		Importance:    9,
		Prerequisites: []string{"multiplication-tables"},
	},
	{
		ID:            "order-of-operations",
		Name:          "Order of Operations",
		Description:   "Evaluate expressions using the standard operation order.",
		Subject:       SubjectArithmetic,
		Grade:         4,
		Difficulty:    DifficultyMedium,
		Importance:    8,
		Prerequisites: []string{"multiplication-tables", "division-basics"},
	},

	// Fractions
	{
		ID:            "fraction-concepts",
		Name:          "Fraction Concepts",
		Description:   "Fractions as parts of a whole and points on a number line.",
		Subject:       SubjectFractions,
		Grade:         4,
		Difficulty:    DifficultyEasy,
		Importance:    8,
		Prerequisites: []string{"division-basics"},
	},
	{
		ID:            "equivalent-fractions",
		Name:          "Equivalent Fractions",
		Description:   "Recognize and generate equivalent fractions; simplify.",
		Subject:       SubjectFractions,
		Grade:         4,
		Difficulty:    DifficultyMedium,
		Importance:    7,
		Prerequisites: []string{"fraction-concepts"},
	},
	{
		ID:            "fraction-addition",
		Name:          "Adding & Subtracting Fractions",
		Description:   "Add and subtract fractions with like and unlike denominators.",
		Subject:       SubjectFractions,
		Grade:         5,
		Difficulty:    DifficultyMedium,
		Importance:    8,
		Prerequisites: []string{"equivalent-fractions"},
	},
	{
		ID:            "fraction-multiplication",
		Name:          "Multiplying Fractions",
		Description:   "Multiply fractions by whole numbers and by fractions.",
		Subject:       SubjectFractions,
		Grade:         5,
		Difficulty:    DifficultyHard,
		Importance:    7,
		Prerequisites: []string{"fraction-concepts", "multiplication-tables"},
	},

	// Decimals & Percents
	{
		ID:            "decimal-concepts",
		Name:          "Decimal Concepts",
		Description:   "Decimal notation, place value to thousandths, comparison.",
		Subject:       SubjectDecimals,
		Grade:         4,
		Difficulty:    DifficultyEasy,
		Importance:    7,
		Prerequisites: []string{"fraction-concepts"},
	},
	{
		ID:            "decimal-operations",
		Name:          "Decimal Operations",
		Description:   "Add, subtract, multiply and divide decimals.",
		Subject:       SubjectDecimals,
		Grade:         5,
		Difficulty:    DifficultyMedium,
		Importance:    7,
		Prerequisites: []string{"decimal-concepts", "addition-basics"},
	},
	{
		ID:            "percentages",
		Name:          "Percentages",
		Description:   "Percents as fractions of 100; percent of a quantity.",
		Subject:       SubjectDecimals,
		Grade:         6,
		Difficulty:    DifficultyMedium,
		Importance:    8,
		Prerequisites: []string{"decimal-concepts", "fraction-concepts"},
	},
	{
		ID:            "ratios-proportions",
		Name:          "Ratios & Proportions",
		Description:   "Ratio language, unit rates and proportional reasoning.",
		Subject:       SubjectDecimals,
		Grade:         6,
		Difficulty:    DifficultyMedium,
		Importance:    7,
		Prerequisites: []string{"percentages"},
	},

	// Geometry
	{
		ID:          "shapes-basics",
		Name:        "Shapes & Their Attributes",
		Description: "Classify 2D shapes by sides, angles and symmetry.",
		Subject:     SubjectGeometry,
		Grade:       3,
		Difficulty:  DifficultyEasy,
		Importance:  6,
	},
	{
		ID:            "perimeter-area",
		Name:          "Perimeter & Area",
		Description:   "Perimeter and area of rectangles and composite figures.",
		Subject:       SubjectGeometry,
		Grade:         4,
		Difficulty:    DifficultyMedium,
		Importance:    6,
		Prerequisites: []string{"shapes-basics", "multiplication-tables"},
	},
	{
		ID:            "angles",
		Name:          "Angles",
		Description:   "Measure and classify angles; angle relationships.",
		Subject:       SubjectGeometry,
		Grade:         5,
		Difficulty:    DifficultyMedium,
		Importance:    5,
		Prerequisites: []string{"shapes-basics"},
	},
	{
		ID:            "volume-surface-area",
		Name:          "Volume & Surface Area",
		Description:   "Volume of rectangular prisms and surface area of solids.",
		Subject:       SubjectGeometry,
		Grade:         6,
		Difficulty:    DifficultyHard,
		Importance:    5,
		Prerequisites: []string{"perimeter-area"},
	},
	{
		ID:            "coordinate-plane",
		Name:          "The Coordinate Plane",
		Description:   "Plot points in four quadrants and find distances.",
		Subject:       SubjectGeometry,
		Grade:         6,
		Difficulty:    DifficultyMedium,
		Importance:    6,
		Prerequisites: []string{"shapes-basics", "negative-numbers"},
	},

	// Algebra Foundations
	{
		ID:            "negative-numbers",
		Name:          "Negative Numbers",
		Description:   "Integers on the number line; operations with signed numbers.",
		Subject:       SubjectAlgebra,
		Grade:         6,
		Difficulty:    DifficultyMedium,
		Importance:    7,
		Prerequisites: []string{"subtraction-basics"},
	},
	{
		ID:            "expressions-variables",
		Name:          "Expressions & Variables",
		Description:   "Write and evaluate expressions with variables.",
		Subject:       SubjectAlgebra,
		Grade:         6,
		Difficulty:    DifficultyMedium,
		Importance:    8,
		Prerequisites: []string{"order-of-operations", "negative-numbers"},
	},
	{
		ID:            "simple-equations",
		Name:          "One-Step Equations",
		Description:   "Solve one-step equations with whole-number solutions.",
		Subject:       SubjectAlgebra,
		Grade:         6,
		Difficulty:    DifficultyHard,
		Importance:    9,
		Prerequisites: []string{"expressions-variables"},
	},
}
