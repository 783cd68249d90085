package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"anicms/internal/repository"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

func reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// Parse pagination parameters
func pagination(c *gin.Context) (page, pageSize int) {
	page, pageSize = 1, 20
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}
	return page, pageSize
}

func pageMeta(page, pageSize int, total int64) gin.H {
	return gin.H{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
	}
}

// Admin form posts answer with a redirect back to the listing page, carrying
// the outcome as a flash query parameter.
func redirectSuccess(c *gin.Context, base, msg string) {
	c.Redirect(http.StatusSeeOther, base+"?success="+url.QueryEscape(msg))
}

func redirectError(c *gin.Context, base string, err error) {
	c.Redirect(http.StatusSeeOther, base+"?error="+url.QueryEscape(flashMessage(err)))
}

func flashMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "the requested record was not found"
	case errors.Is(err, repository.ErrDuplicate):
		return "a record with the same unique value already exists"
	default:
		return err.Error()
	}
}

func jsonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
