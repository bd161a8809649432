package handler

import (
	"net/http"
	"strconv"
	"time"

	"yatube-api/internal/config"
	"yatube-api/internal/middleware"
	"yatube-api/internal/models"
	"yatube-api/internal/service"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService *service.PostService
	pagination  config.PaginationConfig
}

func NewPostHandler(postService *service.PostService, pagination config.PaginationConfig) *PostHandler {
	return &PostHandler{
		postService: postService,
		pagination:  pagination,
	}
}

type PostRequest struct {
	Text  string  `json:"text" binding:"required"`
	Image *string `json:"image"`
	Group *uint   `json:"group"`
}

// PostResponse is the public shape of a post.
type PostResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Image   *string   `json:"image"`
	Group   *uint     `json:"group"`
}

func postResponse(post *models.Post) PostResponse {
	return PostResponse{
		ID:      post.ID,
		Author:  post.Author.Username,
		Text:    post.Text,
		PubDate: post.PubDate,
		Image:   post.Image,
		Group:   post.GroupID,
	}
}

// List returns a paginated page of posts
func (h *PostHandler) List(c *gin.Context) {
	limit, offset := utils.PageParams(c, h.pagination.DefaultLimit, h.pagination.MinLimit, h.pagination.MaxLimit)

	posts, count, err := h.postService.List(limit, offset)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	results := make([]PostResponse, 0, len(posts))
	for i := range posts {
		results = append(results, postResponse(&posts[i]))
	}

	utils.SuccessResponse(c, utils.NewPage(c, count, limit, offset, len(results), results))
}

// Get returns a single post
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, postResponse(post))
}

// Create publishes a new post
func (h *PostHandler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.Create(middleware.Subject(c), service.PostInput{
		Text:    req.Text,
		Image:   req.Image,
		GroupID: req.Group,
	})
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, postResponse(post))
}

// Update edits a post; only its author may do so
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.Update(id, middleware.Subject(c), service.PostInput{
		Text:    req.Text,
		Image:   req.Image,
		GroupID: req.Group,
	})
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, postResponse(post))
}

// Delete removes a post; only its author may do so
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(id, middleware.Subject(c)); err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

func postID(c *gin.Context) (uint, bool) {
	raw := c.Param("post_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID")
		return 0, false
	}
	return uint(id), true
}
