package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/pkg/auth"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.UserAccount, error)
}

type AuthService struct {
	userRepo   UserRepository
	auditSvc   *AuditService
	jwtManager *auth.JWTManager
	log        *zap.Logger
}

func NewAuthService(userRepo UserRepository, auditSvc *AuditService, jwtManager *auth.JWTManager, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		auditSvc:   auditSvc,
		jwtManager: jwtManager,
		log:        log,
	}
}

// Login validates the credentials and issues a session token. Every call
// appends exactly one audit entry before returning, whether or not a
// matching account was found.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*domain.TokenResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	matched := err == nil && secretMatches(user.Secret, password)

	if auditErr := s.auditSvc.Record(ctx, username, matched, ip); auditErr != nil {
		return nil, auditErr
	}

	if !matched {
		s.log.Warn("failed login attempt",
			zap.String("username", username),
			zap.String("ip", ip),
		)
		return nil, ErrInvalidCredentials
	}

	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token, expiresAt, err := s.jwtManager.Sign(claims)
	if err != nil {
		s.log.Error("failed to sign session token", zap.Error(err))
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.log.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("ip", ip),
	)

	return &domain.TokenResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Sanitized(),
	}, nil
}

// Verify recovers the session identity from a bearer token.
func (s *AuthService) Verify(token string) (domain.Claims, error) {
	return s.jwtManager.Verify(token)
}

// secretMatches compares the submitted password against the stored secret.
// Secrets hashed with bcrypt are preferred; legacy plaintext secrets from
// the seed data still compare, in constant time.
func secretMatches(stored, submitted string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
