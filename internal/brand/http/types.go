package http

import (
	"github.com/gin-gonic/gin"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/service"
)

// Handler handles HTTP requests for projects and visual generation.
type Handler struct {
	svc *service.ProjectService
}

// New creates a new Handler.
func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// Every response uses the same envelope: {success: true, data} on success,
// {success: false, error} with a non-2xx status on failure.
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}
