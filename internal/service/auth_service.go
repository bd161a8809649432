package service

import (
	"errors"
	"fmt"
	"time"

	"yatube-api/internal/apperr"
	"yatube-api/internal/models"
	"yatube-api/internal/token"
	"yatube-api/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Registration conflicts are plain client errors, not part of the
// authorization taxonomy.
var (
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrUsernameTaken = errors.New("a user with this name already exists")
)

type AuthService struct {
	users  UserDirectory
	tokens *token.Service
}

func NewAuthService(users UserDirectory, tokens *token.Service) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// TokenPair is the response of a successful login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Type    string `json:"token_type"`
}

// Register creates a new account with role "user". Email is checked
// before username, so the email conflict wins when both are taken.
func (s *AuthService) Register(email, password, username string) (*models.User, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithField("username", username).Info("User registered")
	return user, nil
}

// Authenticate resolves an identity by email and verifies the password.
// Both failure shapes collapse into InvalidCredentials so a caller cannot
// probe which emails are registered.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates, stamps last_login and issues an access/refresh
// token pair. The last_login update happens before token issuance.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	access, err := s.tokens.Issue(user.Email, token.KindAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.Issue(user.Email, token.KindRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &TokenPair{Access: access, Refresh: refresh, Type: "Bearer"}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return "", err
	}
	if _, err := s.tokens.RequireKind(claims, token.KindRefresh); err != nil {
		return "", err
	}

	return s.tokens.Issue(claims.Subject, token.KindAccess)
}

// Verify checks that a token is a valid, unexpired access token.
func (s *AuthService) Verify(tokenString string) error {
	claims, err := s.tokens.Decode(tokenString)
	if err != nil {
		return err
	}
	_, err = s.tokens.RequireKind(claims, token.KindAccess)
	return err
}

// CurrentUser resolves the identity behind a verified token subject.
func (s *AuthService) CurrentUser(subject string) (*models.User, error) {
	user, err := s.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}
