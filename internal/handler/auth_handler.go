package handler

import (
	"errors"
	"net/http"
	"time"

	"yatube-api/internal/middleware"
	"yatube-api/internal/models"
	"yatube-api/internal/service"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService   *service.AuthService
	followService *service.FollowService
}

func NewAuthHandler(authService *service.AuthService, followService *service.FollowService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		followService: followService,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=3,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type FollowRequest struct {
	Following string `json:"following" binding:"required"`
}

// UserResponse is the public shape of a user record.
type UserResponse struct {
	ID         uint       `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	DateJoined time.Time  `json:"date_joined"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Role       string     `json:"role"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		DateJoined: user.DateJoined,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
	}
}

// Register handles new user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, userResponse(user))
}

// CreateToken handles login: it verifies credentials and returns an
// access/refresh token pair.
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, pair)
}

// RefreshToken exchanges a refresh token for a new access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access":     access,
		"token_type": "Bearer",
	})
}

// VerifyToken validates an access token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.Verify(req.Token); err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

// Me returns the authenticated user's own record
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(middleware.Subject(c))
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	resp := userResponse(user)
	resp.LastLogin = user.LastLogin
	utils.SuccessResponse(c, resp)
}

// ListFollows returns the authenticated user's subscriptions
func (h *AuthHandler) ListFollows(c *gin.Context) {
	subscriptions, err := h.followService.Subscriptions(middleware.Subject(c))
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, subscriptions)
}

// Follow subscribes the authenticated user to another user
func (h *AuthHandler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	subscription, err := h.followService.Subscribe(middleware.Subject(c), req.Following)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, subscription)
}
