package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
	"github.com/brandcanvas/brand-canvas-backend/internal/visuals"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "failed to retrieve projects")
		return
	}
	respondOK(c, http.StatusOK, items)
}

type createReq struct {
	Title string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	// An empty or absent body is fine; the service picks a default title.
	_ = c.ShouldBindJSON(&req)

	summary, err := h.svc.Create(c.Request.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "failed to create project")
		return
	}
	respondOK(c, http.StatusOK, summary)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	doc, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondErr(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "failed to load project")
		return
	}
	respondOK(c, http.StatusOK, doc)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var patch domain.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid body")
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		respondErr(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "failed to update project")
		return
	}
	respondOK(c, http.StatusOK, doc)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "failed to delete project")
		return
	}
	if !deleted {
		respondErr(c, http.StatusNotFound, "project not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) generateVisuals(c *gin.Context) {
	var form domain.FormData
	if err := c.ShouldBindJSON(&form); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid body")
		return
	}

	if err := form.Validate(); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	// Generation is stateless: persisting the result is the client's
	// follow-up update call.
	respondOK(c, http.StatusOK, visuals.Generate())
}
