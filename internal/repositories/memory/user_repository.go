package memory

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; exists {
		return apperrors.ErrDuplicate
	}
	if _, taken := s.userIDsByName[user.Username]; taken {
		return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, user.Username)
	}
	if user.Email != "" {
		if _, taken := s.userIDsByEmail[user.Email]; taken {
			return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, user.Email)
		}
	}

	s.users[user.UserID] = user
	s.userIDsByName[user.Username] = user.UserID
	if user.Email != "" {
		s.userIDsByEmail[user.Email] = user.UserID
	}
	if user.TelegramID != "" {
		s.userIDsByTgID[user.TelegramID] = user.UserID
	}
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.userIDsByName[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := s.users[userID]
	return &user, nil
}

func (s *Store) FindUserByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.userIDsByTgID[telegramID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := s.users[userID]
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	// Username is immutable; keep index entries coherent.
	user.Username = existing.Username
	if existing.Email != user.Email {
		if owner, taken := s.userIDsByEmail[user.Email]; taken && owner != user.UserID {
			return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, user.Email)
		}
		delete(s.userIDsByEmail, existing.Email)
		if user.Email != "" {
			s.userIDsByEmail[user.Email] = user.UserID
		}
	}
	if existing.TelegramID != "" && existing.TelegramID != user.TelegramID {
		delete(s.userIDsByTgID, existing.TelegramID)
	}
	if user.TelegramID != "" {
		s.userIDsByTgID[user.TelegramID] = user.UserID
	}
	s.users[user.UserID] = user
	return nil
}
