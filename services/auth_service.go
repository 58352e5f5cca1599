package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tactify-cms/models"
	"tactify-cms/repositories"
)

type AuthService interface {
	VerifyCredentials(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GenerateConfirmationToken(user *models.User, ttl time.Duration) (string, error)
	Confirm(user *models.User, token string) bool
	GenerateAuthToken(user *models.User, ttl time.Duration) (string, error)
	VerifyAuthToken(token string) (string, bool)
}

type authService struct {
	userRepo repositories.UserRepository
	secret   []byte
}

func NewAuthService(userRepo repositories.UserRepository, secret []byte) AuthService {
	return &authService{userRepo: userRepo, secret: secret}
}

// VerifyCredentials fails identically for an unknown email and a wrong
// password so callers cannot tell the two cases apart.
func (s *authService) VerifyCredentials(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(password) {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GenerateConfirmationToken signs a short-lived token carrying the
// user id under the "confirm" claim.
func (s *authService) GenerateConfirmationToken(user *models.User, ttl time.Duration) (string, error) {
	return s.sign(jwt.MapClaims{"confirm": user.ID}, ttl)
}

// Confirm redeems a confirmation token for the given user and marks
// the account confirmed. Signature mismatch, expiry and claim mismatch
// all fold into a plain false; nothing here raises.
func (s *authService) Confirm(user *models.User, token string) bool {
	claims, ok := s.verify(token)
	if !ok {
		return false
	}

	id, ok := claims["confirm"].(float64)
	if !ok || uint(id) != user.ID {
		return false
	}

	user.Confirmed = true
	return s.userRepo.Update(user) == nil
}

// GenerateAuthToken signs a stateless token identifying the user by
// email, for non-session API callers.
func (s *authService) GenerateAuthToken(user *models.User, ttl time.Duration) (string, error) {
	return s.sign(jwt.MapClaims{"id": user.Email}, ttl)
}

// VerifyAuthToken returns the email a stateless token identifies, or
// ok=false for anything expired, corrupt or signed with another key.
func (s *authService) VerifyAuthToken(token string) (string, bool) {
	claims, ok := s.verify(token)
	if !ok {
		return "", false
	}
	email, ok := claims["id"].(string)
	return email, ok
}

func (s *authService) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["exp"] = now.Add(ttl).Unix()
	claims["iat"] = now.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) verify(tokenString string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
