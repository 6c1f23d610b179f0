package jsonfile

import (
	"context"
	"sync"
	"time"

	"github.com/ayushbridge/ayushbridge/internal/domain/record"
)

var _ record.Repository = (*RecordStore)(nil)

// RecordStore holds the append-only clinical record table. Writers are
// serialized behind an exclusive lock so concurrent appends cannot lose
// updates; this is a strengthening over the original single-threaded
// whole-file rewrite.
type RecordStore struct {
	mu      sync.RWMutex
	path    string
	records []record.ClinicalRecord
	obs     WriteObserver
}

// LoadRecords reads the records document. A missing or unreadable file is
// fatal to startup.
func LoadRecords(path string, obs WriteObserver) (*RecordStore, error) {
	records, err := readDocument[record.ClinicalRecord](path)
	if err != nil {
		return nil, err
	}
	return &RecordStore{path: path, records: records, obs: obs}, nil
}

func (s *RecordStore) Append(ctx context.Context, r *record.ClinicalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *r)

	started := time.Now()
	err := writeDocument(s.path, s.records)
	observe(s.obs, "records", started, err)
	return err
}

func (s *RecordStore) ListByPatient(ctx context.Context, patientID string) ([]record.ClinicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []record.ClinicalRecord{}
	for _, r := range s.records {
		if r.PatientID == patientID {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (s *RecordStore) FirstByPatient(ctx context.Context, patientID string) (*record.ClinicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.PatientID == patientID {
			first := r
			return &first, nil
		}
	}
	return nil, record.ErrRecordNotFound
}

func (s *RecordStore) All(ctx context.Context) ([]record.ClinicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]record.ClinicalRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}
