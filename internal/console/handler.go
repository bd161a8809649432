package console

import (
	"net/http"
	"strconv"

	"yatube-api/internal/models"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie names the cookie holding the opaque console session id.
const SessionCookie = "console_session"

const contextRole = "console_role"

// UserStore exposes the user operations the console needs.
type UserStore interface {
	List() ([]models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(id uint, fields map[string]interface{}) (*models.User, error)
	Delete(id uint) error
}

// GroupStore exposes the group operations the console needs.
type GroupStore interface {
	List() ([]models.Group, error)
	FindByID(id uint) (*models.Group, error)
	Create(group *models.Group) error
	Update(id uint, fields map[string]interface{}) (*models.Group, error)
	Delete(id uint) error
}

// PostStore exposes the post operations the console needs.
type PostStore interface {
	List(limit, offset int) ([]models.Post, error)
	FindByID(id uint) (*models.Post, error)
	Delete(id uint) error
}

// CommentStore exposes the comment operations the console needs.
type CommentStore interface {
	List() ([]models.Comment, error)
	Delete(id uint) error
}

// Handler serves the administrative console as JSON endpoints. Every
// route past login re-authenticates the session and consults the
// capability table for the specific entity and action.
type Handler struct {
	gate     *Gate
	users    UserStore
	groups   GroupStore
	posts    PostStore
	comments CommentStore
}

func NewHandler(gate *Gate, users UserStore, groups GroupStore, posts PostStore, comments CommentStore) *Handler {
	return &Handler{
		gate:     gate,
		users:    users,
		groups:   groups,
		posts:    posts,
		comments: comments,
	}
}

// RegisterRoutes mounts the console under /console.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	root := r.Group("/console")
	root.POST("/login", h.Login)
	root.POST("/logout", h.Logout)

	authed := root.Group("")
	authed.Use(h.RequireSession())
	{
		authed.GET("/users", h.require(EntityUsers, ActionView), h.ListUsers)
		authed.GET("/users/:id", h.require(EntityUsers, ActionView), h.GetUser)
		authed.PUT("/users/:id", h.require(EntityUsers, ActionEdit), h.UpdateUser)
		authed.DELETE("/users/:id", h.require(EntityUsers, ActionDelete), h.DeleteUser)

		authed.GET("/groups", h.require(EntityGroups, ActionView), h.ListGroups)
		authed.POST("/groups", h.require(EntityGroups, ActionCreate), h.CreateGroup)
		authed.PUT("/groups/:id", h.require(EntityGroups, ActionEdit), h.UpdateGroup)
		authed.DELETE("/groups/:id", h.require(EntityGroups, ActionDelete), h.DeleteGroup)

		authed.GET("/posts", h.require(EntityPosts, ActionView), h.ListPosts)
		authed.DELETE("/posts/:id", h.require(EntityPosts, ActionDelete), h.DeletePost)

		authed.GET("/comments", h.require(EntityComments, ActionView), h.ListComments)
		authed.DELETE("/comments/:id", h.require(EntityComments, ActionDelete), h.DeleteComment)
	}
}

// RequireSession re-validates the console session on every request and
// injects the session role into the context.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Console login required")
			c.Abort()
			return
		}

		session, err := h.gate.Authenticate(sessionID)
		if err != nil {
			utils.FailureResponse(c, err)
			c.Abort()
			return
		}

		c.Set(contextRole, session.Role)
		c.Next()
	}
}

func (h *Handler) require(entity Entity, action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(contextRole)
		roleStr, _ := role.(string)
		if !CanAccess(roleStr, entity, action) {
			utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Login handles the console login form. The form field is named
// "username" but carries the account email.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing credentials")
		return
	}

	sessionID, err := h.gate.Login(email, password)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	c.SetCookie(SessionCookie, sessionID, 0, "/console", "", false, true)
	utils.SuccessResponse(c, gin.H{"detail": "logged in"})
}

// Logout destroys the console session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(SessionCookie); err == nil {
		h.gate.Logout(sessionID)
	}
	c.SetCookie(SessionCookie, "", -1, "/console", "", false, true)
	utils.SuccessResponse(c, gin.H{"detail": "logged out"})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	if user == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}
	utils.SuccessResponse(c, user)
}

type consoleUserUpdate struct {
	Role      *string `json:"role" binding:"omitempty,oneof=user moderator admin root"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req consoleUserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}

	user, err := h.users.Update(id, fields)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(id); err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detail": "deleted"})
}

func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.groups.List()
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, groups)
}

type consoleGroupInput struct {
	Title       string `json:"title" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req consoleGroupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	group := &models.Group{Title: req.Title, Slug: req.Slug, Description: req.Description}
	if err := h.groups.Create(group); err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.CreatedResponse(c, group)
}

func (h *Handler) UpdateGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req consoleGroupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.groups.Update(id, map[string]interface{}{
		"title":       req.Title,
		"slug":        req.Slug,
		"description": req.Description,
	})
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, group)
}

func (h *Handler) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.groups.Delete(id); err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detail": "deleted"})
}

func (h *Handler) ListPosts(c *gin.Context) {
	limit, offset := utils.PageParams(c, 100, 1, 1000)
	posts, err := h.posts.List(limit, offset)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, posts)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(id); err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detail": "deleted"})
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.comments.List()
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, comments)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.comments.Delete(id); err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detail": "deleted"})
}

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
