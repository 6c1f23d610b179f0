package service

import (
	"context"
	"errors"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/domain/record"
)

var _ UserRepository = (*mockUserRepo)(nil)

type mockUserRepo struct {
	users []domain.UserAccount
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			return &m.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.UserAccount, error) {
	matches := []domain.UserAccount{}
	for _, u := range m.users {
		if u.Role == role {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

var _ AuditRepository = (*mockAuditRepo)(nil)

type mockAuditRepo struct {
	entries   []domain.AuditEntry
	appendErr error
}

func (m *mockAuditRepo) Append(ctx context.Context, e *domain.AuditEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *mockAuditRepo) All(ctx context.Context) ([]domain.AuditEntry, error) {
	return m.entries, nil
}

var _ record.Repository = (*mockRecordRepo)(nil)

type mockRecordRepo struct {
	records   []record.ClinicalRecord
	appendErr error
}

func (m *mockRecordRepo) Append(ctx context.Context, r *record.ClinicalRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *mockRecordRepo) ListByPatient(ctx context.Context, patientID string) ([]record.ClinicalRecord, error) {
	matches := []record.ClinicalRecord{}
	for _, r := range m.records {
		if r.PatientID == patientID {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (m *mockRecordRepo) FirstByPatient(ctx context.Context, patientID string) (*record.ClinicalRecord, error) {
	for _, r := range m.records {
		if r.PatientID == patientID {
			first := r
			return &first, nil
		}
	}
	return nil, record.ErrRecordNotFound
}

func (m *mockRecordRepo) All(ctx context.Context) ([]record.ClinicalRecord, error) {
	return m.records, nil
}

var errWriteFailed = errors.New("disk full")
