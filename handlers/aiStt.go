package handlers

import (
	"io"
	"net/http"

	"casexpert/utils"

	"github.com/gin-gonic/gin"
)

// STTHandler transcribes the optional multipart "audio" field. Without
// audio, or when transcription fails, the placeholder transcript is returned.
func (h *AIHandler) STTHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	var audio []byte
	if fileHeader, err := c.FormFile("audio"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, utils.WrapError(utils.KindInternal, "failed to read audio", err))
			return
		}
		defer file.Close()
		audio, err = io.ReadAll(io.LimitReader(file, maxAudioSize))
		if err != nil {
			respondError(c, utils.WrapError(utils.KindInternal, "failed to read audio", err))
			return
		}
	}

	resp, err := h.ML.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
