package middleware

import (
	"net/http"
	"strings"

	"yatube-api/internal/token"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextSubject is the gin context key carrying the verified token
// subject (the user's email).
const ContextSubject = "subject"

// Auth validates the Bearer access token from the Authorization header
// and injects its subject into the request context. Refresh tokens are
// rejected here: they are only good for the refresh endpoint.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := tokens.Decode(parts[1])
		if err != nil {
			utils.FailureResponse(c, err)
			c.Abort()
			return
		}

		if _, err := tokens.RequireKind(claims, token.KindAccess); err != nil {
			utils.FailureResponse(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSubject, claims.Subject)

		c.Next()
	}
}

// Subject returns the verified token subject injected by Auth.
func Subject(c *gin.Context) string {
	subject, _ := c.Get(ContextSubject)
	s, _ := subject.(string)
	return s
}
