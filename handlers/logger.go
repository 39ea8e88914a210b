package handlers

import (
	"errors"
	"io"

	"casexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// bindJSON decodes the request body into v. An empty body leaves v untouched.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return utils.WrapError(utils.KindInvalidInput, "invalid JSON body", err)
	}
	return nil
}

// respondError writes err using the request logger.
func respondError(c *gin.Context, err error) {
	utils.RespondError(c, getLogger(c), err)
}
