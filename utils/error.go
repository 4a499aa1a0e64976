package utils

import (
	"errors"
	"net/http"

	"eventify/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Error:   "An unexpected error occurred. Please try again later.",
					Code:    "INTERNAL",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, code string, message string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("code", code), zap.Int("status", status))
	c.JSON(status, ErrorResponse{Success: false, Error: message, Code: code})
}

// RespondDomainError maps a typed domain error to its HTTP status and stable
// error code.
func RespondDomainError(c *gin.Context, err error) {
	var (
		validationErr models.ValidationError
		notFoundErr   models.NotFoundError
		conflictErr   models.ConflictError
		stateErr      models.InvalidStateError
		expiredErr    models.ExpiredError
	)
	switch {
	case errors.As(err, &validationErr):
		JSONError(c, http.StatusBadRequest, "VALIDATION_FAILED", validationErr.Error())
	case errors.As(err, &notFoundErr):
		JSONError(c, http.StatusNotFound, "NOT_FOUND", notFoundErr.Error())
	case errors.As(err, &conflictErr):
		JSONError(c, http.StatusConflict, "CONFLICT", conflictErr.Error())
	case errors.As(err, &stateErr):
		JSONError(c, http.StatusConflict, "INVALID_STATE", stateErr.Error())
	case errors.As(err, &expiredErr):
		JSONError(c, http.StatusGone, "EXPIRED", expiredErr.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
