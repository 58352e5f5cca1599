package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"tactify-cms/models"
	"tactify-cms/repositories"
)

type SessionService interface {
	Login(email, password string, remember bool) (*models.User, string, error)
	Logout(sessionID string) error
	PrincipalFromSession(sessionID string) models.Principal
	Lifetime(remember bool) time.Duration
}

type sessionService struct {
	auth        AuthService
	sessionRepo repositories.SessionRepository
	userRepo    repositories.UserRepository
	lifetime    time.Duration
	remember    time.Duration
}

func NewSessionService(auth AuthService, sessionRepo repositories.SessionRepository, userRepo repositories.UserRepository, lifetime, remember time.Duration) SessionService {
	return &sessionService{
		auth:        auth,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		lifetime:    lifetime,
		remember:    remember,
	}
}

// Login verifies credentials and establishes a fresh session, clearing
// any previous sessions for the user. The returned id goes into the
// session cookie.
func (s *sessionService) Login(email, password string, remember bool) (*models.User, string, error) {
	user, err := s.auth.VerifyCredentials(email, password)
	if err != nil {
		return nil, "", err
	}

	if err := s.sessionRepo.DeleteByUserID(user.ID); err != nil {
		log.Printf("login: clearing old sessions for uid=%d: %v", user.ID, err)
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.Lifetime(remember)),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, "", err
	}

	return user, session.ID, nil
}

// Logout tears the session down; already-gone sessions are fine.
func (s *sessionService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.DeleteByID(sessionID)
}

// PrincipalFromSession resolves the current principal, falling back to
// the anonymous principal for missing, unknown or expired sessions.
func (s *sessionService) PrincipalFromSession(sessionID string) models.Principal {
	if sessionID == "" {
		return models.Anonymous
	}

	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Printf("session lookup sid=%s: %v", sessionID, err)
		}
		return models.Anonymous
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.DeleteByID(session.ID); err != nil {
			log.Printf("session expire sid=%s: %v", session.ID, err)
		}
		return models.Anonymous
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return models.Anonymous
	}

	return models.Principal{User: user}
}

func (s *sessionService) Lifetime(remember bool) time.Duration {
	if remember {
		return s.remember
	}
	return s.lifetime
}
