// Package settings holds the learner-editable practice configuration.
package settings

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

const (
	// MinTable is the smallest selectable table.
	MinTable = 0

	// MaxTable is the largest selectable table.
	MaxTable = 10
)

// Count is the number of exercises in a practice session.
// It marshals as a JSON number, or as the string "all" for an
// unbounded session.
type Count int

// CountAll marks a session with no exercise limit.
const CountAll Count = -1

// CountChoices lists the selectable session lengths in display order.
var CountChoices = []Count{10, 20, 50, CountAll}

// Bounded reports whether the session ends after a fixed number of exercises.
func (c Count) Bounded() bool {
	return c != CountAll
}

func (c Count) String() string {
	if c == CountAll {
		return "all"
	}
	return strconv.Itoa(int(c))
}

// MarshalJSON encodes CountAll as "all" and everything else as a number.
func (c Count) MarshalJSON() ([]byte, error) {
	if c == CountAll {
		return json.Marshal("all")
	}
	return json.Marshal(int(c))
}

// UnmarshalJSON accepts a number or the string "all".
func (c *Count) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Count(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid exercise count: %s", data)
	}
	if s != "all" {
		return fmt.Errorf("invalid exercise count: %q", s)
	}
	*c = CountAll
	return nil
}

// Settings is the persisted practice configuration.
type Settings struct {
	// MultiplicationTables are the selected multiplication tables (0-10).
	MultiplicationTables []int `json:"multiplicationTables"`

	// DivisionTables are the selected divisor tables (1-10, never 0).
	DivisionTables []int `json:"divisionTables"`

	// ExerciseCount is the session length.
	ExerciseCount Count `json:"exerciseCount"`
}

// Default returns the settings used when nothing has been persisted yet:
// no tables selected, 10-exercise sessions.
func Default() Settings {
	return Settings{ExerciseCount: 10}
}

// HasTables reports whether at least one table set is non-empty.
func (s Settings) HasTables() bool {
	return len(s.MultiplicationTables) > 0 || len(s.DivisionTables) > 0
}

// Normalize returns a copy with table sets restricted to their valid
// ranges (division never contains 0), sorted and deduplicated, and the
// exercise count coerced to a known choice.
func (s Settings) Normalize() Settings {
	out := s
	out.MultiplicationTables = normalizeTables(s.MultiplicationTables, MinTable)
	out.DivisionTables = normalizeTables(s.DivisionTables, 1)
	if !slices.Contains(CountChoices, s.ExerciseCount) {
		out.ExerciseCount = Default().ExerciseCount
	}
	return out
}

// ToggleMultiplication adds or removes a multiplication table.
// Out-of-range values are ignored.
func (s *Settings) ToggleMultiplication(table int) {
	s.MultiplicationTables = toggle(s.MultiplicationTables, table, MinTable)
}

// ToggleDivision adds or removes a division table.
// Out-of-range values (including 0) are ignored.
func (s *Settings) ToggleDivision(table int) {
	s.DivisionTables = toggle(s.DivisionTables, table, 1)
}

func toggle(tables []int, table, lo int) []int {
	if table < lo || table > MaxTable {
		return tables
	}
	if i := slices.Index(tables, table); i >= 0 {
		return slices.Delete(tables, i, i+1)
	}
	tables = append(tables, table)
	slices.Sort(tables)
	return tables
}

func normalizeTables(tables []int, lo int) []int {
	var out []int
	for _, t := range tables {
		if t >= lo && t <= MaxTable && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
