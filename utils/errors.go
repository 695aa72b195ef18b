package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds surfaced to callers alongside the HTTP status
const (
	KindInvalidInput = "INVALID_INPUT"
	KindInvalidSplit = "INVALID_SPLIT"
	KindNotFound     = "NOT_FOUND"
	KindForbidden    = "FORBIDDEN"
	KindUnauthorized = "UNAUTHORIZED"
	KindPersistence  = "PERSISTENCE_FAILURE"
)

// AppError represents a custom application error
type AppError struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidInput,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInvalidSplitError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidSplit,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Kind:    KindForbidden,
		Code:    http.StatusForbidden,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Kind:    KindPersistence,
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidInput,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": KindPersistence})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
