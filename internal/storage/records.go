package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Records is the injected record store facade. Every mutation re-serializes
// the full collection and overwrites it, so a save is all-or-nothing from
// the caller's perspective.
type Records struct {
	kv KV
}

// NewRecords wraps a key-value backend in the record store facade.
func NewRecords(kv KV) *Records {
	return &Records{kv: kv}
}

// Load reads the named collection into out, which must be a pointer to a
// slice. A missing collection leaves out empty. A payload that fails to
// parse is logged, moved to quarantine, and treated as empty; no error is
// returned for it.
func (r *Records) Load(ctx context.Context, collection string, out any) error {
	payload, ok, err := r.kv.Get(ctx, collection)
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if !ok || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		slog.Warn("Quarantining unparsable collection",
			"collection", collection,
			"bytes", len(payload),
			"error", err,
		)
		if qerr := r.kv.Quarantine(ctx, collection, payload); qerr != nil {
			return fmt.Errorf("quarantine %s: %w", collection, qerr)
		}
		if derr := r.kv.Delete(ctx, collection); derr != nil {
			return fmt.Errorf("clear quarantined %s: %w", collection, derr)
		}
	}
	return nil
}

// Save serializes v and overwrites the named collection.
func (r *Records) Save(ctx context.Context, collection string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", collection, err)
	}
	if err := r.kv.Put(ctx, collection, payload); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Clear removes the named collection entirely.
func (r *Records) Clear(ctx context.Context, collection string) error {
	if err := r.kv.Delete(ctx, collection); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	return nil
}

// GetValue reads a scalar key (such as the language preference) as a string.
func (r *Records) GetValue(ctx context.Context, key string) (string, bool, error) {
	payload, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return string(payload), ok, nil
}

// SetValue overwrites a scalar key.
func (r *Records) SetValue(ctx context.Context, key, value string) error {
	if err := r.kv.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying backend.
func (r *Records) Close() error {
	return r.kv.Close()
}
