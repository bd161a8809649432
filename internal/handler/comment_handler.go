package handler

import (
	"net/http"
	"strconv"
	"time"

	"yatube-api/internal/middleware"
	"yatube-api/internal/models"
	"yatube-api/internal/service"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Post    uint      `json:"post"`
}

func commentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID,
		Author:  comment.Author.Username,
		Text:    comment.Text,
		Created: comment.Created,
		Post:    comment.PostID,
	}
}

// List returns all comments on a post
func (h *CommentHandler) List(c *gin.Context) {
	pid, ok := postID(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(pid)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	results := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, commentResponse(&comments[i]))
	}
	utils.SuccessResponse(c, results)
}

// Get returns a single comment by its compound key
func (h *CommentHandler) Get(c *gin.Context) {
	pid, ok := postID(c)
	if !ok {
		return
	}
	id, ok := commentID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(pid, id)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, commentResponse(comment))
}

// Create adds a comment to a post
func (h *CommentHandler) Create(c *gin.Context) {
	pid, ok := postID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(pid, middleware.Subject(c), req.Text)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, commentResponse(comment))
}

// Update edits a comment; only its author may do so
func (h *CommentHandler) Update(c *gin.Context) {
	pid, ok := postID(c)
	if !ok {
		return
	}
	id, ok := commentID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(pid, id, middleware.Subject(c), req.Text)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, commentResponse(comment))
}

// Delete removes a comment; only its author may do so
func (h *CommentHandler) Delete(c *gin.Context) {
	pid, ok := postID(c)
	if !ok {
		return
	}
	id, ok := commentID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(pid, id, middleware.Subject(c)); err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

func commentID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid comment ID")
		return 0, false
	}
	return uint(id), true
}
