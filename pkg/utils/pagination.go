package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page is the limit/offset list envelope with navigation links.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// PageParams reads limit/offset query parameters, clamping limit to the
// configured bounds and offset to zero or above.
func PageParams(c *gin.Context, defaultLimit, minLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// NewPage builds the pagination envelope. The next link is present only
// when the current page came back full; the previous link only when the
// request was offset past the start.
func NewPage(c *gin.Context, count int64, limit, offset, resultLen int, results interface{}) Page {
	baseURL := requestBaseURL(c)

	page := Page{Count: count, Results: results}
	if resultLen == limit {
		next := fmt.Sprintf("%s?offset=%d&limit=%d", baseURL, offset+limit, limit)
		page.Next = &next
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		previous := fmt.Sprintf("%s?offset=%d&limit=%d", baseURL, prevOffset, limit)
		page.Previous = &previous
	}
	return page
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.Path)
}
