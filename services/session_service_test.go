package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tactify-cms/models"
	"tactify-cms/repositories"
)

func newSessionService(t *testing.T) (SessionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	createUser(t, db, "mod@example.com", "Moderator", "secret")

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	auth := NewAuthService(userRepo, []byte("test-secret"))
	return NewSessionService(auth, sessionRepo, userRepo, 24*time.Hour, 30*24*time.Hour), db
}

func TestLoginEstablishesSession(t *testing.T) {
	sessions, _ := newSessionService(t)

	user, sid, err := sessions.Login("mod@example.com", "secret", false)
	require.NoError(t, err)
	assert.NotEmpty(t, sid)
	assert.Equal(t, "mod@example.com", user.Email)

	principal := sessions.PrincipalFromSession(sid)
	assert.True(t, principal.IsAuthenticated())
	assert.True(t, principal.Can(models.PermissionWriteArticles))
	assert.False(t, principal.IsAdministrator())
}

func TestLoginWrongPassword(t *testing.T) {
	sessions, _ := newSessionService(t)

	_, sid, err := sessions.Login("mod@example.com", "wrong", false)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Empty(t, sid)
}

func TestLoginReplacesOldSessions(t *testing.T) {
	sessions, _ := newSessionService(t)

	_, first, err := sessions.Login("mod@example.com", "secret", false)
	require.NoError(t, err)
	_, second, err := sessions.Login("mod@example.com", "secret", false)
	require.NoError(t, err)

	assert.False(t, sessions.PrincipalFromSession(first).IsAuthenticated())
	assert.True(t, sessions.PrincipalFromSession(second).IsAuthenticated())
}

func TestLogoutIsIdempotent(t *testing.T) {
	sessions, _ := newSessionService(t)

	_, sid, err := sessions.Login("mod@example.com", "secret", false)
	require.NoError(t, err)

	require.NoError(t, sessions.Logout(sid))
	assert.False(t, sessions.PrincipalFromSession(sid).IsAuthenticated())

	// Logging out again, or with no session at all, is fine.
	require.NoError(t, sessions.Logout(sid))
	require.NoError(t, sessions.Logout(""))
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	sessions, db := newSessionService(t)

	user, _, err := sessions.Login("mod@example.com", "secret", false)
	require.NoError(t, err)

	stale := &models.Session{ID: "stale-session", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, db.Create(stale).Error)

	principal := sessions.PrincipalFromSession("stale-session")
	assert.False(t, principal.IsAuthenticated())
	assert.True(t, principal.Can(models.PermissionComment))
}

func TestRememberExtendsLifetime(t *testing.T) {
	sessions, _ := newSessionService(t)

	assert.Equal(t, 24*time.Hour, sessions.Lifetime(false))
	assert.Equal(t, 30*24*time.Hour, sessions.Lifetime(true))
}

func TestUnknownSessionIsAnonymous(t *testing.T) {
	sessions, _ := newSessionService(t)

	principal := sessions.PrincipalFromSession("no-such-session")
	assert.False(t, principal.IsAuthenticated())
	assert.False(t, principal.Can(models.PermissionWriteArticles))
}
