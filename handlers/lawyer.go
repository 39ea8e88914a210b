package handlers

import (
	"net/http"

	"casexpert/models"
	"casexpert/services/lawyer"

	"github.com/gin-gonic/gin"
)

type LawyerHandler struct {
	Lawyers lawyer.LawyerService
}

func NewLawyerHandler(svc lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{Lawyers: svc}
}

func (h *LawyerHandler) ListLawyersHandler(c *gin.Context) {
	items, err := h.Lawyers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	item, err := h.Lawyers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *LawyerHandler) CreateLawyerHandler(c *gin.Context) {
	var in models.LawyerInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.Lawyers.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *LawyerHandler) PatchLawyerHandler(c *gin.Context) {
	var patch models.LawyerPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.Lawyers.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *LawyerHandler) DeleteLawyerHandler(c *gin.Context) {
	existed, err := h.Lawyers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
