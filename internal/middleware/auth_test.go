package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube-api/internal/config"
	"yatube-api/internal/token"

	"github.com/gin-gonic/gin"
)

func authRouter(t *testing.T) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewService(config.JWTConfig{
		SecretKey:     "test-secret-key",
		Algorithm:     "HS256",
		AccessExpiry:  2 * time.Hour,
		RefreshExpiry: 30 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("Failed to create token service: %v", err)
	}

	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": Subject(c)})
	})
	return r, tokens
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsAccessToken(t *testing.T) {
	r, tokens := authRouter(t)

	access, err := tokens.Issue("a@x.com", token.KindAccess)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	w := request(r, "Bearer "+access)
	if w.Code != http.StatusOK {
		t.Errorf("Unexpected status: got %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	r, tokens := authRouter(t)

	refresh, err := tokens.Issue("a@x.com", token.KindRefresh)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	w := request(r, "Bearer "+refresh)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected refresh token to be rejected with 401, got %d", w.Code)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r, _ := authRouter(t)

	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without Authorization header, got %d", w.Code)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r, _ := authRouter(t)

	if w := request(r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for non-Bearer scheme, got %d", w.Code)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	r, tokens := authRouter(t)

	access, err := tokens.Issue("a@x.com", token.KindAccess)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if w := request(r, "Bearer "+access+"x"); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for tampered token, got %d", w.Code)
	}
}
