package entity

import "strings"

// MasteryLevel describes how well the learner currently knows a word. Levels
// serialize as their lowercase names so snapshots stay human-readable.
type MasteryLevel string

const (
	MasteryLearning  MasteryLevel = "learning"  // newly introduced or weak
	MasteryPracticed MasteryLevel = "practiced" // moderate competence
	MasteryMastered  MasteryLevel = "mastered"  // high competence
)

// Valid reports whether the level is one of the three known values.
func (m MasteryLevel) Valid() bool {
	switch m {
	case MasteryLearning, MasteryPracticed, MasteryMastered:
		return true
	default:
		return false
	}
}

// Matured reports whether the word has grown past the learning stage.
func (m MasteryLevel) Matured() bool {
	return m == MasteryPracticed || m == MasteryMastered
}

// ParseMasteryLevel converts an arbitrary string into a MasteryLevel,
// defaulting to MasteryLearning for unknown input.
func ParseMasteryLevel(s string) MasteryLevel {
	level := MasteryLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return MasteryLearning
	}
	return level
}
