package utils

import (
	"errors"
	"net/http"

	"yatube-api/internal/apperr"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse sends a success JSON response with 201 status
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"detail": message,
	})
}

// FailureResponse maps an error from the service layer to its HTTP
// status. Every authorization failure has exactly one status; unknown
// errors become a 500 without leaking internals.
func FailureResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrInvalidSignature),
		errors.Is(err, apperr.ErrExpired),
		errors.Is(err, apperr.ErrWrongTokenKind),
		errors.Is(err, apperr.ErrStaleSession):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden),
		errors.Is(err, apperr.ErrInsufficientRole):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrDuplicateFollow):
		// Duplicate follow reports 404, matching the public API contract.
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrSelfFollow):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
