package store

import (
	"context"
	"encoding/json"

	"github.com/abhisek/tably/internal/settings"
)

// The two persisted records are JSON-encoded and rewritten in full on
// every change. Missing or unparsable records silently fall back to
// defaults: stale on-disk state should never prevent startup.

// LoadSettings reads the settings record, returning normalized defaults
// when the record is absent or corrupt.
func LoadSettings(ctx context.Context, kv KV) (settings.Settings, error) {
	raw, ok, err := kv.Load(ctx, SettingsKey)
	if err != nil {
		return settings.Default(), err
	}
	if !ok {
		return settings.Default(), nil
	}

	var cfg settings.Settings
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return settings.Default(), nil
	}
	return cfg.Normalize(), nil
}

// SaveSettings overwrites the settings record.
func SaveSettings(ctx context.Context, kv KV, cfg settings.Settings) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return kv.Save(ctx, SettingsKey, string(b))
}

// LoadScores reads the mastery record as a raw score map, returning an
// empty map when the record is absent or corrupt.
func LoadScores(ctx context.Context, kv KV) (map[string]int, error) {
	raw, ok, err := kv.Load(ctx, ScoresKey)
	if err != nil {
		return map[string]int{}, err
	}
	if !ok {
		return map[string]int{}, nil
	}

	scores := map[string]int{}
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return map[string]int{}, nil
	}
	return scores, nil
}

// SaveScores overwrites the mastery record.
func SaveScores(ctx context.Context, kv KV, scores map[string]int) error {
	b, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return kv.Save(ctx, ScoresKey, string(b))
}
