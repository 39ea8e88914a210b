package handlers

import (
	"net/http"

	"casexpert/middleware"
	"casexpert/services/legal"

	"github.com/gin-gonic/gin"
)

type LegalHandler struct {
	Legal legal.LegalService
}

func NewLegalHandler(svc legal.LegalService) *LegalHandler {
	return &LegalHandler{Legal: svc}
}

func (h *LegalHandler) TopicsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.Legal.Topics()})
}

func (h *LegalHandler) SearchHandler(c *gin.Context) {
	items, err := h.Legal.Search(c.Request.Context(), middleware.GetClientIP(c), c.Query("q"), c.DefaultQuery("jurisdiction", "in"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
