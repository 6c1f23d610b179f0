// Package jsonfile persists each store as one flat JSON document. Every
// mutation rewrites the whole file; there is no incremental append format.
// In-memory state can run ahead of durable state when a rewrite fails; the
// error is surfaced and no rollback is attempted.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteObserver reports the outcome of a whole-file rewrite, typically into
// the metrics collector. May be nil.
type WriteObserver func(store string, elapsed time.Duration, failed bool)

func readDocument[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}

// writeDocument replaces the document atomically: the new content is written
// to a temp file in the same directory and renamed over the original.
func writeDocument(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func observe(obs WriteObserver, store string, started time.Time, err error) {
	if obs != nil {
		obs(store, time.Since(started), err != nil)
	}
}
