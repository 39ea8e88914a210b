package handlers

import (
	"io"
	"net/http"

	"casexpert/middleware"
	"casexpert/models"
	ai "casexpert/services/intelligence"
	"casexpert/utils"

	"github.com/gin-gonic/gin"
)

const maxAudioSize = 5 * 1024 * 1024

type AIHandler struct {
	Assistant ai.AssistantService
	ML        ai.MLService
}

func NewAIHandler(assistant ai.AssistantService, ml ai.MLService) *AIHandler {
	return &AIHandler{Assistant: assistant, ML: ml}
}

func (h *AIHandler) AssistantQueryHandler(c *gin.Context) {
	var req models.AssistantRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.Assistant.Ask(c.Request.Context(), middleware.GetClientIP(c), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) SummarizeHandler(c *gin.Context) {
	var req models.SummarizeRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.ML.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) TranslateHandler(c *gin.Context) {
	var req models.TranslateRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.ML.Translate(c.Request.Context(), req.Text, req.Target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OCRHandler accepts an optional multipart "file" field.
func (h *AIHandler) OCRHandler(c *gin.Context) {
	var image []byte
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			respondError(c, utils.WrapError(utils.KindInternal, "failed to read upload", err))
			return
		}
		defer f.Close()
		image, _ = io.ReadAll(io.LimitReader(f, maxAudioSize))
	}
	resp, err := h.ML.OCR(c.Request.Context(), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) HashHandler(c *gin.Context) {
	var req models.HashRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.ML.Hash(req.Content, req.Algorithm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
