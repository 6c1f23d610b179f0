package jsonfile

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/ayushbridge/ayushbridge/internal/domain"
)

// AuditStore holds the append-only login transaction log.
type AuditStore struct {
	mu      sync.RWMutex
	path    string
	entries []domain.AuditEntry
	obs     WriteObserver
}

// LoadAudit reads the audit document. Unlike the other stores, a missing
// file is not an error: the log starts empty and is created on first write.
func LoadAudit(path string, obs WriteObserver) (*AuditStore, error) {
	entries, err := readDocument[domain.AuditEntry](path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		entries = []domain.AuditEntry{}
	}
	return &AuditStore{path: path, entries: entries, obs: obs}, nil
}

func (s *AuditStore) Append(ctx context.Context, e *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, *e)

	started := time.Now()
	err := writeDocument(s.path, s.entries)
	observe(s.obs, "audit", started, err)
	return err
}

func (s *AuditStore) All(ctx context.Context) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
