package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newSessionService(store *fakeSessionStore) *SessionService {
	svc := NewSessionService(store)
	svc.Now = fixedNow
	return svc
}

func TestAuthenticateMissingToken(t *testing.T) {
	svc := newSessionService(&fakeSessionStore{})

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"wrong scheme", "Basic abc123"},
		{"bearer with no token", "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.header)
			require.Error(t, err)
			assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "Unauthorized: missing token", appErr.Message())
		})
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	svc := newSessionService(&fakeSessionStore{err: gorm.ErrRecordNotFound})

	_, err := svc.Authenticate(context.Background(), "Bearer nope")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Unauthorized: invalid token", appErr.Message())
}

func TestAuthenticateExpiredToken(t *testing.T) {
	svc := newSessionService(&fakeSessionStore{session: &models.Session{
		UserID:    "u1",
		ExpiresAt: fixedNow().Add(-time.Minute),
	}})

	_, err := svc.Authenticate(context.Background(), "Bearer tok")
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Unauthorized: token expired", appErr.Message())
}

func TestAuthenticateExpiryBoundary(t *testing.T) {
	// Expiry exactly at "now" is expired.
	svc := newSessionService(&fakeSessionStore{session: &models.Session{
		UserID:    "u1",
		ExpiresAt: fixedNow(),
	}})

	_, err := svc.Authenticate(context.Background(), "Bearer tok")
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := newSessionService(&fakeSessionStore{session: &models.Session{
		UserID:    "u1",
		ExpiresAt: fixedNow().Add(time.Hour),
	}})

	userID, err := svc.Authenticate(context.Background(), "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthenticateStoreFailure(t *testing.T) {
	svc := newSessionService(&fakeSessionStore{err: errors.New("connection refused")})

	_, err := svc.Authenticate(context.Background(), "Bearer tok")
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
