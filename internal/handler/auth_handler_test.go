package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube-api/internal/config"
	"yatube-api/internal/middleware"
	"yatube-api/internal/models"
	"yatube-api/internal/service"
	"yatube-api/internal/token"

	"github.com/gin-gonic/gin"
)

type memUsers struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[uint]*models.User), nextID: 1}
}

func (m *memUsers) FindByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *memUsers) Create(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	user.DateJoined = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) UpdateLastLogin(id uint, at time.Time) error {
	if user, ok := m.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

type memFollows struct {
	users   *memUsers
	follows []models.Follow
}

func (m *memFollows) Find(userID, followingID uint) (*models.Follow, error) {
	for i := range m.follows {
		if m.follows[i].UserID == userID && m.follows[i].FollowingID == followingID {
			return &m.follows[i], nil
		}
	}
	return nil, nil
}

func (m *memFollows) ListByFollower(userID uint) ([]models.Follow, error) {
	var result []models.Follow
	for _, follow := range m.follows {
		if follow.UserID == userID {
			if following, ok := m.users.users[follow.FollowingID]; ok {
				follow.Following = *following
			}
			result = append(result, follow)
		}
	}
	return result, nil
}

func (m *memFollows) Create(follow *models.Follow) error {
	follow.ID = uint(len(m.follows) + 1)
	m.follows = append(m.follows, *follow)
	return nil
}

func authFlowRouter(t *testing.T) *gin.Engine {
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

	users := newMemUsers()
	authService := service.NewAuthService(users, tokens)
	followService := service.NewFollowService(users, &memFollows{users: users})
	h := NewAuthHandler(authService, followService)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/register", h.Register)
	api.POST("/jwt/create", h.CreateToken)
	api.POST("/jwt/refresh", h.RefreshToken)
	api.POST("/jwt/verify", h.VerifyToken)
	authed := api.Group("")
	authed.Use(middleware.Auth(tokens))
	authed.GET("/me", h.Me)
	authed.POST("/follow", h.Follow)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAuthFlow(t *testing.T) {
	r := authFlowRouter(t)

	// Register.
	w := postJSON(t, r, "/api/v1/register", gin.H{
		"email":    "a@x.com",
		"password": "p1secret",
		"name":     "alice",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Register failed: %d %s", w.Code, w.Body.String())
	}
	registered := decodeBody(t, w)
	if registered["username"] != "alice" || registered["role"] != "user" {
		t.Errorf("Unexpected registration payload: %v", registered)
	}

	// Login returns an access and a refresh token.
	w = postJSON(t, r, "/api/v1/jwt/create", gin.H{
		"email":    "a@x.com",
		"password": "p1secret",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed: %d %s", w.Code, w.Body.String())
	}
	pair := decodeBody(t, w)
	access, _ := pair["access"].(string)
	refresh, _ := pair["refresh"].(string)
	if access == "" || refresh == "" {
		t.Fatalf("Expected token pair, got %v", pair)
	}

	// The refresh token buys a new access token.
	w = postJSON(t, r, "/api/v1/jwt/refresh", gin.H{"refresh": refresh}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Refresh failed: %d %s", w.Code, w.Body.String())
	}
	if refreshed := decodeBody(t, w); refreshed["access"] == "" {
		t.Errorf("Expected a new access token, got %v", refreshed)
	}

	// The refresh token is rejected at an access-only endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected refresh token at /me to fail with 401, got %d", w.Code)
	}

	// The access token works there.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Me failed: %d %s", w.Code, w.Body.String())
	}
	if me := decodeBody(t, w); me["email"] != "a@x.com" {
		t.Errorf("Unexpected /me payload: %v", me)
	}
}

func TestFollowEndpointStatuses(t *testing.T) {
	r := authFlowRouter(t)

	for _, u := range []gin.H{
		{"email": "a@x.com", "password": "p1secret", "name": "alice"},
		{"email": "b@x.com", "password": "p2secret", "name": "bob"},
	} {
		if w := postJSON(t, r, "/api/v1/register", u, ""); w.Code != http.StatusOK {
			t.Fatalf("Register failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := postJSON(t, r, "/api/v1/jwt/create", gin.H{"email": "a@x.com", "password": "p1secret"}, "")
	access, _ := decodeBody(t, w)["access"].(string)
	if access == "" {
		t.Fatal("Expected access token")
	}

	cases := []struct {
		following string
		want      int
	}{
		{"bob", http.StatusOK},
		{"bob", http.StatusNotFound},   // duplicate
		{"alice", http.StatusBadRequest}, // self
		{"nobody", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := postJSON(t, r, "/api/v1/follow", gin.H{"following": tc.following}, access)
		if w.Code != tc.want {
			t.Errorf("Follow %q: got %d, want %d (body %s)", tc.following, w.Code, tc.want, w.Body.String())
		}
	}
}
