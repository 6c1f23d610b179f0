package jsonfile

import (
	"context"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/service"
)

var _ service.UserRepository = (*UserStore)(nil)

// UserStore is the identity table. It is loaded once at startup and only
// read afterwards; account administration happens directly on the data
// file, outside this process.
type UserStore struct {
	users      []domain.UserAccount
	byID       map[string]*domain.UserAccount
	byUsername map[string]*domain.UserAccount
}

// LoadUsers reads the users document. A missing or unreadable file is fatal
// to startup.
func LoadUsers(path string) (*UserStore, error) {
	users, err := readDocument[domain.UserAccount](path)
	if err != nil {
		return nil, err
	}

	s := &UserStore{
		users:      users,
		byID:       make(map[string]*domain.UserAccount, len(users)),
		byUsername: make(map[string]*domain.UserAccount, len(users)),
	}
	for i := range s.users {
		u := &s.users[i]
		s.byID[u.ID] = u
		s.byUsername[u.Username] = u
	}
	return s, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return u, nil
}

// ListByRole returns accounts in load order.
func (s *UserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.UserAccount, error) {
	matches := []domain.UserAccount{}
	for _, u := range s.users {
		if u.Role == role {
			matches = append(matches, u)
		}
	}
	return matches, nil
}
