package exercise

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/tably/internal/settings"
)

// maxAttempts bounds the retry loop when a candidate collides with the
// previous exercise. Expected never to trigger in normal configurations.
const maxAttempts = 20

// MaxScore is the mastery score ceiling; table selection weights are
// MaxScore + 1 - score, so weights range 1-11.
const MaxScore = 10

// Score thresholds for the difficulty bands.
const (
	challengeThreshold = 8 // score > 8 unlocks challenge exercises
	simpleThreshold    = 3 // score < 3 restricts to the simple band
)

// simpleMultipliers are the easy non-table operands used in the simple band.
var simpleMultipliers = []int{0, 1, 2, 5, 10}

// ScoreSource reports the mastery score for an (operation, table) pair.
// Unknown pairs score 0.
type ScoreSource interface {
	Score(op Operation, table int) int
}

// Generator produces exercises using score-weighted table selection.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	now := uint64(time.Now().UnixNano())
	return NewWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewWithRand returns a Generator using the given random source.
// Inject a fixed-seed source for reproducible behavior under test.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate produces one exercise for the given settings and mastery scores.
// When previous is non-nil, candidates identical to it (same A, B and
// Result) are rejected and regenerated. Returns nil when both table sets
// are empty, or when maxAttempts candidates in a row collided with previous.
func (g *Generator) Generate(cfg settings.Settings, scores ScoreSource, previous *Exercise) *Exercise {
	var ops []Operation
	if len(cfg.MultiplicationTables) > 0 {
		ops = append(ops, OpMultiplication)
	}
	if len(cfg.DivisionTables) > 0 {
		ops = append(ops, OpDivision)
	}
	if len(ops) == 0 {
		return nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		op := ops[g.rnd.IntN(len(ops))]

		var ex *Exercise
		if op == OpMultiplication {
			table := g.pickTable(op, cfg.MultiplicationTables, scores)
			ex = g.multiplication(table, scores.Score(op, table))
		} else {
			table := g.pickTable(op, cfg.DivisionTables, scores)
			ex = g.division(table, scores.Score(op, table))
		}

		if ex.SameAs(previous) {
			continue
		}
		return ex
	}

	return nil
}

// pickTable selects a table with probability proportional to
// MaxScore + 1 - score: the weaker the table, the more often it comes up.
// Implemented as a cumulative-weight walk in set order so ties resolve
// deterministically for a given random draw.
func (g *Generator) pickTable(op Operation, tables []int, scores ScoreSource) int {
	total := 0
	for _, t := range tables {
		total += MaxScore + 1 - scores.Score(op, t)
	}

	r := g.rnd.Float64() * float64(total)
	for _, t := range tables {
		r -= float64(MaxScore + 1 - scores.Score(op, t))
		if r <= 0 {
			return t
		}
	}
	return tables[len(tables)-1]
}

func (g *Generator) multiplication(table, score int) *Exercise {
	if score > challengeThreshold && g.coinFlip() {
		return g.multiplicationChallenge(table)
	}

	var other int
	if score < simpleThreshold {
		other = simpleMultipliers[g.rnd.IntN(len(simpleMultipliers))]
	} else {
		other = g.rnd.IntN(11)
	}

	a, b := table, other
	if g.coinFlip() {
		a, b = other, table
	}
	return &Exercise{A: a, B: b, Op: OpMultiplication, Result: table * other}
}

// multiplicationChallenge builds one of the two high-mastery variants:
// the table against a large operand (11-15), or a compound two-step
// expression rendered via the Display override.
func (g *Generator) multiplicationChallenge(table int) *Exercise {
	if g.coinFlip() {
		other := 11 + g.rnd.IntN(5)
		return &Exercise{
			A:           table,
			B:           other,
			Op:          OpMultiplication,
			Result:      table * other,
			IsChallenge: true,
		}
	}

	b := g.rnd.IntN(11)
	c := 1 + g.rnd.IntN(10)
	return &Exercise{
		A:           table,
		B:           b,
		Op:          OpMultiplication,
		Result:      table*b + c,
		Display:     fmt.Sprintf("(%d × %d) + %d", table, b, c),
		IsChallenge: true,
	}
}

// division builds an exercise with table as the divisor: the quotient is
// drawn per the difficulty band and the dividend derived from it, so the
// answer always divides evenly.
func (g *Generator) division(table, score int) *Exercise {
	if score > challengeThreshold && g.coinFlip() {
		quotient := 11 + g.rnd.IntN(5)
		return &Exercise{
			A:           table * quotient,
			B:           table,
			Op:          OpDivision,
			Result:      quotient,
			IsChallenge: true,
		}
	}

	var quotient int
	if score < simpleThreshold {
		easy := []int{1, 2, 5, 10}
		quotient = easy[g.rnd.IntN(len(easy))]
	} else {
		quotient = g.rnd.IntN(11)
	}

	return &Exercise{
		A:      table * quotient,
		B:      table,
		Op:     OpDivision,
		Result: quotient,
	}
}

func (g *Generator) coinFlip() bool {
	return g.rnd.IntN(2) == 0
}
