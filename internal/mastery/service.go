package mastery

import (
	"context"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/settings"
	"github.com/abhisek/tably/internal/store"
)

// Service holds the process-wide mastery scores and keeps the persisted
// record in sync after every update.
type Service struct {
	kv     store.KV
	scores Scores
}

// NewService creates a mastery service, loading scores from the store.
// A missing or corrupt record yields empty scores. kv may be nil for a
// purely in-memory service (tests).
func NewService(ctx context.Context, kv store.KV) (*Service, error) {
	s := &Service{kv: kv, scores: Scores{}}
	if kv == nil {
		return s, nil
	}

	raw, err := store.LoadScores(ctx, kv)
	if err != nil {
		return nil, err
	}
	for k, v := range raw {
		s.scores[k] = min(max(v, MinScore), MaxScore)
	}
	return s, nil
}

// Score implements exercise.ScoreSource.
func (s *Service) Score(op exercise.Operation, table int) int {
	return s.scores.Score(op, table)
}

// Record credits or debits the table exercised by ex and persists the
// updated record. Returns the credited table and its new score.
func (s *Service) Record(ctx context.Context, ex *exercise.Exercise, cfg settings.Settings, correct bool) (table, score int, err error) {
	table = CreditedTable(ex, cfg.MultiplicationTables)
	score = s.scores.Apply(ex.Op, table, correct)

	if s.kv != nil {
		err = store.SaveScores(ctx, s.kv, s.scores)
	}
	return table, score, err
}

// All returns a copy of the current scores.
func (s *Service) All() Scores {
	out := make(Scores, len(s.scores))
	for k, v := range s.scores {
		out[k] = v
	}
	return out
}

// Reset clears all scores and deletes the persisted record.
func (s *Service) Reset(ctx context.Context) error {
	s.scores = Scores{}
	if s.kv == nil {
		return nil
	}
	return s.kv.Delete(ctx, store.ScoresKey)
}
