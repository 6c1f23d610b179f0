package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/domain"
)

type AuditRepository interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	All(ctx context.Context) ([]domain.AuditEntry, error)
}

// AuditService records login attempts. Writes are synchronous: an attempt
// must be durable before the login call returns, so there is no buffering.
type AuditService struct {
	repo AuditRepository
	log  *zap.Logger
}

func NewAuditService(repo AuditRepository, log *zap.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record appends exactly one entry for a login attempt, successful or not.
// The username is stored as submitted.
func (s *AuditService) Record(ctx context.Context, username string, success bool, ip string) error {
	entry := &domain.AuditEntry{
		ID:        uuid.NewString(),
		Username:  username,
		Success:   success,
		IPAddress: ip,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Error("failed to persist audit entry",
			zap.String("username", username),
			zap.Error(err),
		)
		return fmt.Errorf("persisting audit entry: %w", err)
	}
	return nil
}

// List returns all login transactions in append order.
func (s *AuditService) List(ctx context.Context) ([]domain.AuditEntry, error) {
	return s.repo.All(ctx)
}
