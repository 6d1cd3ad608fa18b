package http

import "github.com/gin-gonic/gin"

// Register attaches the project and generation routes to the given group.
// Middleware passed in is applied to the generation endpoint only.
func (h *Handler) Register(rg *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	rg.GET("/projects", h.list)
	rg.POST("/projects", h.create)
	rg.GET("/projects/:id", h.get)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)

	handlers := append([]gin.HandlerFunc{}, generateMiddleware...)
	handlers = append(handlers, h.generateVisuals)
	rg.POST("/generate-visuals", handlers...)
}
