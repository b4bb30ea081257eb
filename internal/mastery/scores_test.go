package mastery

import (
	"testing"

	"github.com/abhisek/tably/internal/exercise"
)

func TestScores_MissingKeyIsZero(t *testing.T) {
	s := Scores{}
	if got := s.Score(exercise.OpMultiplication, 7); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestScores_ApplyStaysInRange(t *testing.T) {
	for start := MinScore; start <= MaxScore; start++ {
		for _, correct := range []bool{true, false} {
			s := Scores{Key(exercise.OpDivision, 4): start}
			got := s.Apply(exercise.OpDivision, 4, correct)
			if got < MinScore || got > MaxScore {
				t.Errorf("Apply(start=%d, correct=%v) = %d, out of range", start, correct, got)
			}
		}
	}
}

func TestScores_ApplyIncrementsAndDecrements(t *testing.T) {
	s := Scores{}

	if got := s.Apply(exercise.OpMultiplication, 5, true); got != 1 {
		t.Errorf("first correct answer: score = %d, want 1", got)
	}
	if got := s.Apply(exercise.OpMultiplication, 5, false); got != 0 {
		t.Errorf("after incorrect: score = %d, want 0", got)
	}
	// Floored at 0.
	if got := s.Apply(exercise.OpMultiplication, 5, false); got != 0 {
		t.Errorf("decrement below floor: score = %d, want 0", got)
	}

	// Capped at 10.
	s[Key(exercise.OpMultiplication, 5)] = MaxScore
	if got := s.Apply(exercise.OpMultiplication, 5, true); got != MaxScore {
		t.Errorf("increment above cap: score = %d, want %d", got, MaxScore)
	}
}

func TestCreditedTable_DivisionUsesDivisor(t *testing.T) {
	ex := &exercise.Exercise{A: 24, B: 6, Op: exercise.OpDivision, Result: 4}
	if got := CreditedTable(ex, nil); got != 6 {
		t.Errorf("CreditedTable = %d, want 6", got)
	}
}

func TestCreditedTable_MultiplicationPrefersA(t *testing.T) {
	tables := []int{3, 8}

	// Only B is a configured table.
	ex := &exercise.Exercise{A: 7, B: 8, Op: exercise.OpMultiplication, Result: 56}
	if got := CreditedTable(ex, tables); got != 8 {
		t.Errorf("CreditedTable = %d, want 8", got)
	}

	// Both operands configured: A wins.
	both := &exercise.Exercise{A: 3, B: 8, Op: exercise.OpMultiplication, Result: 24}
	if got := CreditedTable(both, tables); got != 3 {
		t.Errorf("CreditedTable = %d, want 3 (left-to-right preference)", got)
	}
}

func TestKey(t *testing.T) {
	if got := Key(exercise.OpMultiplication, 5); got != "multiplication-5" {
		t.Errorf("Key = %q", got)
	}
	if got := Key(exercise.OpDivision, 10); got != "division-10" {
		t.Errorf("Key = %q", got)
	}
}
