package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error taxonomy shared by every resource. Services and repositories wrap
// these sentinels with fmt.Errorf("...: %w", err) so handlers can map any
// failure to exactly one status code.
var (
	// ErrInvalidID marks an identifier that failed validation before any
	// store call was issued.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrInvalidInput marks a malformed or incomplete request payload.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized marks a sentinel "undefined"/"null" identity value.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a well-formed id that matched no document.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a store uniqueness violation or a guarded update
	// that matched nothing (duplicate unlock, insufficient stock).
	ErrConflict = errors.New("conflict")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusFromError maps a (possibly wrapped) taxonomy error to an HTTP status.
// Anything outside the taxonomy is treated as a store failure.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps err onto the taxonomy and writes the JSON error body.
// Store failures are logged at error level; everything else is the caller's
// fault and logged at warn.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("store operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	logger.Warn("request rejected",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(status, ErrorResponse{Message: err.Error()})
}
