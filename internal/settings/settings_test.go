package settings

import (
	"encoding/json"
	"testing"
)

func TestCount_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Settings{ExerciseCount: CountAll})
	if err != nil {
		t.Fatal(err)
	}
	var cfg Settings
	if err := json.Unmarshal(b, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.ExerciseCount != CountAll {
		t.Errorf("ExerciseCount = %v, want all", cfg.ExerciseCount)
	}

	if err := json.Unmarshal([]byte(`{"exerciseCount":20}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.ExerciseCount != 20 {
		t.Errorf("ExerciseCount = %v, want 20", cfg.ExerciseCount)
	}
}

func TestCount_RejectsUnknownString(t *testing.T) {
	var c Count
	if err := json.Unmarshal([]byte(`"forever"`), &c); err == nil {
		t.Error("expected error for unknown count string")
	}
}

func TestNormalize_DropsInvalidTables(t *testing.T) {
	cfg := Settings{
		MultiplicationTables: []int{5, 11, -1, 5, 0},
		DivisionTables:       []int{0, 3, 12, 3},
		ExerciseCount:        7,
	}
	got := cfg.Normalize()

	wantMult := []int{0, 5}
	if len(got.MultiplicationTables) != len(wantMult) {
		t.Fatalf("MultiplicationTables = %v, want %v", got.MultiplicationTables, wantMult)
	}
	for i, v := range wantMult {
		if got.MultiplicationTables[i] != v {
			t.Errorf("MultiplicationTables = %v, want %v", got.MultiplicationTables, wantMult)
			break
		}
	}

	// 0 is never a valid divisor.
	if len(got.DivisionTables) != 1 || got.DivisionTables[0] != 3 {
		t.Errorf("DivisionTables = %v, want [3]", got.DivisionTables)
	}

	// Unknown counts coerce to the default.
	if got.ExerciseCount != Default().ExerciseCount {
		t.Errorf("ExerciseCount = %v, want default", got.ExerciseCount)
	}
}

func TestToggle(t *testing.T) {
	var cfg Settings

	cfg.ToggleMultiplication(4)
	cfg.ToggleMultiplication(2)
	if len(cfg.MultiplicationTables) != 2 || cfg.MultiplicationTables[0] != 2 {
		t.Errorf("MultiplicationTables = %v, want [2 4]", cfg.MultiplicationTables)
	}

	cfg.ToggleMultiplication(4)
	if len(cfg.MultiplicationTables) != 1 || cfg.MultiplicationTables[0] != 2 {
		t.Errorf("MultiplicationTables = %v, want [2]", cfg.MultiplicationTables)
	}

	// Division 0 is not selectable.
	cfg.ToggleDivision(0)
	if len(cfg.DivisionTables) != 0 {
		t.Errorf("DivisionTables = %v, want empty", cfg.DivisionTables)
	}
}

func TestHasTables(t *testing.T) {
	if (Settings{}).HasTables() {
		t.Error("empty settings report tables")
	}
	if !(Settings{DivisionTables: []int{2}}).HasTables() {
		t.Error("division-only settings report no tables")
	}
}
