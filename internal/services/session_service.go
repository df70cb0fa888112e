package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

// SessionService resolves bearer tokens against the session table owned by
// the external identity system. Read-only: no refresh, no sliding expiry.
type SessionService struct {
	Sessions stores.SessionStore
	Now      func() time.Time
}

func NewSessionService(sessions stores.SessionStore) *SessionService {
	return &SessionService{Sessions: sessions, Now: time.Now}
}

// Authenticate takes the raw Authorization header value and returns the
// owning user id.
func (s *SessionService) Authenticate(ctx context.Context, authHeader string) (string, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", apperr.New(apperr.Unauthenticated, "Unauthorized: missing token")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", apperr.New(apperr.Unauthenticated, "Unauthorized: missing token")
	}

	session, err := s.Sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.New(apperr.Unauthenticated, "Unauthorized: invalid token")
		}
		return "", apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if !session.ExpiresAt.After(s.Now()) {
		return "", apperr.New(apperr.Unauthenticated, "Unauthorized: token expired")
	}
	return session.UserID, nil
}
