package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures surfaced to API callers.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindForbidden       ErrorKind = "forbidden"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindRateLimited     ErrorKind = "rate_limited"
	KindUpstreamFailure ErrorKind = "upstream_failure"
	KindInternal        ErrorKind = "internal"
)

// AppError is the error type services return for caller-visible failures.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound     = &AppError{Kind: KindNotFound, Message: "Not found"}
	ErrUnauthorized = &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrForbidden    = &AppError{Kind: KindForbidden, Message: "forbidden"}
)

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusFor maps an error kind onto its HTTP status code.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   ErrorKind `json:"error"`
	Message string    `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   KindInternal,
					Message: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// RespondError writes err as {"error": kind, "message": text}. Internal
// causes are logged and never echoed to the caller.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	kind := KindOf(err)
	status := StatusFor(kind)

	message := "internal error"
	var appErr *AppError
	if errors.As(err, &appErr) && kind != KindInternal {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("kind", string(kind)), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("kind", string(kind)), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: kind, Message: message})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, kind ErrorKind, message string) {
	c.AbortWithStatusJSON(StatusFor(kind), ErrorResponse{Error: kind, Message: message})
}
