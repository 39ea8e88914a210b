package handlers

import (
	"net/http"

	"casexpert/services/storage"
	"casexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler accepts case attachments.
type StorageHandler struct {
	Store storage.AttachmentStore
}

func NewStorageHandler(store storage.AttachmentStore) *StorageHandler {
	return &StorageHandler{Store: store}
}

// UploadFileHandler stores the multipart field "file".
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, utils.NewError(utils.KindInvalidInput, "no file"))
		return
	}
	if fileHeader.Size > storage.MaxUploadSize {
		respondError(c, utils.NewError(utils.KindInvalidInput, "file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, utils.WrapError(utils.KindInternal, "failed to read upload", err))
		return
	}
	defer file.Close()

	att, err := h.Store.Save(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		respondError(c, utils.WrapError(utils.KindInternal, "failed to store file", err))
		return
	}
	getLogger(c).Info("UploadFileHandler: stored attachment", zap.String("filename", att.Filename), zap.Int64("size", att.Size))
	c.JSON(http.StatusOK, att)
}
