// Package exercise generates practice exercises, adapting difficulty
// per table to the learner's mastery scores.
package exercise

import "fmt"

// Operation identifies the arithmetic operation of an exercise.
type Operation string

const (
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// Symbol returns the display glyph for the operation.
func (o Operation) Symbol() string {
	if o == OpDivision {
		return "÷"
	}
	return "×"
}

// Exercise is a single practice question. Immutable once created.
type Exercise struct {
	// A and B are the operands. For division, A is the dividend and
	// B is the divisor (the table being practiced).
	A int
	B int

	// Op is the arithmetic operation.
	Op Operation

	// Result is the expected answer.
	Result int

	// Display, when non-empty, overrides the default "A op B" prompt.
	// Used for compound challenge expressions like "(6 × 4) + 3".
	Display string

	// IsChallenge marks a higher-difficulty question unlocked at high mastery.
	IsChallenge bool
}

// Prompt returns the question text shown to the learner.
func (e *Exercise) Prompt() string {
	if e.Display != "" {
		return e.Display
	}
	return fmt.Sprintf("%d %s %d", e.A, e.Op.Symbol(), e.B)
}

// SameAs reports whether e matches other on all of A, B and Result.
// This is the repeat-avoidance check: it deliberately compares the three
// fields rather than full structural equality, so candidates sharing two
// of the three fields still count as distinct.
func (e *Exercise) SameAs(other *Exercise) bool {
	if other == nil {
		return false
	}
	return e.A == other.A && e.B == other.B && e.Result == other.Result
}
