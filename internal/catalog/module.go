package catalog

import "strings"

// Difficulty represents a module's target experience level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Valid reports whether d is one of the three known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Title returns the human-readable capitalized form ("Beginner").
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Module is a single learning unit in the catalog.
type Module struct {
	ID          string
	Title       string
	Description string
	Topics      []string
	HandsOn     bool
	Difficulty  Difficulty
}

// HandsOnMarker renders the hands-on flag the way the portal displays it.
func (m Module) HandsOnMarker() string {
	if m.HandsOn {
		return "✅ Yes"
	}
	return "❌ No"
}

// AssessmentCriteria holds the three scoring weights for a difficulty level.
// The weights are percentages and sum to exactly 100.
type AssessmentCriteria struct {
	Understanding  int
	Application    int
	ProblemSolving int
}

// Sum returns the total of the three weights.
func (c AssessmentCriteria) Sum() int {
	return c.Understanding + c.Application + c.ProblemSolving
}
