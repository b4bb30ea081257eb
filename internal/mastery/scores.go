// Package mastery tracks a per-table mastery score for each operation,
// nudged up and down as the learner answers.
package mastery

import (
	"fmt"
	"slices"

	"github.com/abhisek/tably/internal/exercise"
)

const (
	// MinScore is the score floor.
	MinScore = 0

	// MaxScore is the score ceiling.
	MaxScore = 10
)

// Scores maps "<operation>-<table>" keys to scores in [MinScore, MaxScore].
// A missing key means score 0.
type Scores map[string]int

// Key builds the score key for an (operation, table) pair.
func Key(op exercise.Operation, table int) string {
	return fmt.Sprintf("%s-%d", op, table)
}

// Score returns the score for an (operation, table) pair, 0 when untracked.
// Implements exercise.ScoreSource.
func (s Scores) Score(op exercise.Operation, table int) int {
	return s[Key(op, table)]
}

// Apply increments (correct) or decrements (incorrect) the score for an
// (operation, table) pair, clamped to [MinScore, MaxScore].
func (s Scores) Apply(op exercise.Operation, table int, correct bool) int {
	score := s[Key(op, table)]
	if correct {
		score++
	} else {
		score--
	}
	score = min(max(score, MinScore), MaxScore)
	s[Key(op, table)] = score
	return score
}

// CreditedTable returns the table an answer counts toward. For division
// that is always the divisor (B). For multiplication it is whichever
// operand belongs to the configured table set, checking A before B; the
// left-to-right preference matters when both operands are selected tables.
func CreditedTable(ex *exercise.Exercise, multiplicationTables []int) int {
	if ex.Op == exercise.OpDivision {
		return ex.B
	}
	if slices.Contains(multiplicationTables, ex.A) {
		return ex.A
	}
	if slices.Contains(multiplicationTables, ex.B) {
		return ex.B
	}
	return ex.A
}
