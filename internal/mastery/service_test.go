package mastery

import (
	"context"
	"testing"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/settings"
	"github.com/abhisek/tably/internal/store"
)

// memKV implements store.KV in memory for testing.
type memKV map[string]string

func (m memKV) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memKV) Save(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memKV) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func TestNewService_EmptyStore(t *testing.T) {
	svc, err := NewService(context.Background(), memKV{})
	if err != nil {
		t.Fatal(err)
	}
	if got := svc.Score(exercise.OpMultiplication, 3); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestNewService_CorruptRecordFallsBack(t *testing.T) {
	kv := memKV{store.ScoresKey: "{not json"}
	svc, err := NewService(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	if got := svc.Score(exercise.OpDivision, 2); got != 0 {
		t.Errorf("Score after corrupt record = %d, want 0", got)
	}
}

func TestNewService_ClampsLoadedScores(t *testing.T) {
	kv := memKV{store.ScoresKey: `{"multiplication-4":99,"division-3":-2}`}
	svc, err := NewService(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	if got := svc.Score(exercise.OpMultiplication, 4); got != MaxScore {
		t.Errorf("Score = %d, want %d", got, MaxScore)
	}
	if got := svc.Score(exercise.OpDivision, 3); got != MinScore {
		t.Errorf("Score = %d, want %d", got, MinScore)
	}
}

func TestRecord_PersistsAfterEveryUpdate(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	svc, err := NewService(ctx, kv)
	if err != nil {
		t.Fatal(err)
	}

	cfg := settings.Settings{MultiplicationTables: []int{5}}
	ex := &exercise.Exercise{A: 5, B: 2, Op: exercise.OpMultiplication, Result: 10}

	table, score, err := svc.Record(ctx, ex, cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	if table != 5 || score != 1 {
		t.Errorf("Record = (%d, %d), want (5, 1)", table, score)
	}

	// The record is written through immediately.
	reloaded, err := NewService(ctx, kv)
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Score(exercise.OpMultiplication, 5); got != 1 {
		t.Errorf("reloaded score = %d, want 1", got)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	svc, err := NewService(ctx, kv)
	if err != nil {
		t.Fatal(err)
	}

	cfg := settings.Settings{DivisionTables: []int{4}}
	ex := &exercise.Exercise{A: 8, B: 4, Op: exercise.OpDivision, Result: 2}
	if _, _, err := svc.Record(ctx, ex, cfg, true); err != nil {
		t.Fatal(err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if got := svc.Score(exercise.OpDivision, 4); got != 0 {
		t.Errorf("Score after reset = %d, want 0", got)
	}
	if _, ok := kv[store.ScoresKey]; ok {
		t.Error("scores record still present after reset")
	}
}
