package handlers

import (
	"net/http"

	"casexpert/middleware"
	"casexpert/models"
	"casexpert/services/cases"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	Cases cases.CaseService
}

func NewCaseHandler(svc cases.CaseService) *CaseHandler {
	return &CaseHandler{Cases: svc}
}

func (h *CaseHandler) ListCasesHandler(c *gin.Context) {
	items, err := h.Cases.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CaseHandler) GetCaseHandler(c *gin.Context) {
	item, err := h.Cases.Get(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CaseHandler) CreateCaseHandler(c *gin.Context) {
	var in models.CaseInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.Cases.Create(c.Request.Context(), middleware.CallerFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CaseHandler) PatchCaseHandler(c *gin.Context) {
	var patch models.CasePatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.Cases.Patch(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CaseHandler) DeleteCaseHandler(c *gin.Context) {
	existed, err := h.Cases.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
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

func (h *CaseHandler) SearchCasesHandler(c *gin.Context) {
	items, err := h.Cases.Search(c.Request.Context(), middleware.CallerFrom(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
