package console

import (
	"fmt"
	"time"

	"yatube-api/internal/apperr"
	"yatube-api/internal/service"
	"yatube-api/internal/token"

	"github.com/sirupsen/logrus"
)

// Gate is the console's session/role gate. Logging in is a privilege
// gate, not just an authentication gate: plain users are rejected even
// with correct credentials, and every subsequent request re-derives the
// role from the live user record.
type Gate struct {
	auth     *service.AuthService
	users    service.UserDirectory
	tokens   *token.Service
	sessions *SessionStore
}

func NewGate(auth *service.AuthService, users service.UserDirectory, tokens *token.Service, sessions *SessionStore) *Gate {
	return &Gate{
		auth:     auth,
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Login authenticates console credentials and establishes a session.
// Credential failure and privilege failure are reported separately.
func (g *Gate) Login(email, password string) (string, error) {
	user, err := g.auth.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	if !isConsoleRole(user.Role) {
		return "", apperr.ErrInsufficientRole
	}

	if err := g.users.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to update last login: %w", err)
	}

	accessToken, err := g.tokens.Issue(user.Email, token.KindAccess)
	if err != nil {
		return "", fmt.Errorf("failed to issue console token: %w", err)
	}

	sessionID := g.sessions.Put(Session{Token: accessToken, Role: user.Role})
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("Console login")

	return sessionID, nil
}

// Logout destroys the session.
func (g *Gate) Logout(sessionID string) {
	g.sessions.Delete(sessionID)
}

// Authenticate re-validates a console session: the token must still
// verify, its subject must still exist, and the live role must equal the
// role captured at login. A role change invalidates the session on the
// very next request.
func (g *Gate) Authenticate(sessionID string) (Session, error) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return Session{}, apperr.ErrStaleSession
	}

	claims, err := g.tokens.Decode(session.Token)
	if err != nil {
		return Session{}, err
	}

	user, err := g.users.FindByEmail(claims.Subject)
	if err != nil {
		return Session{}, err
	}
	if user == nil || user.Role != session.Role {
		return Session{}, apperr.ErrStaleSession
	}

	return session, nil
}
