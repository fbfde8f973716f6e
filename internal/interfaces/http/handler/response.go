package handler

import (
	"errors"
	"net/http"

	"github.com/furqanmax/simplepos-printing/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// Response is the standard API envelope
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the error payload of a failed response
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondSuccess writes a success envelope
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

// respondError maps an error onto the envelope with the right status code
func respondError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(statusForCode(domainErr.Code), Response{
			Success: false,
			Error:   &ErrorInfo{Code: domainErr.Code, Message: domainErr.Message},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   &ErrorInfo{Code: "INTERNAL_ERROR", Message: err.Error()},
	})
}

// respondBindError writes a 400 for a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   &ErrorInfo{Code: "INVALID_REQUEST", Message: err.Error()},
	})
}

// statusForCode maps domain error codes onto HTTP status codes
func statusForCode(code string) int {
	switch code {
	case "UNKNOWN_FORMAT", "UNKNOWN_STYLE", "NOT_FOUND":
		return http.StatusNotFound
	case "NO_COMPATIBLE_FORMAT", "INSUFFICIENT_FORMAT":
		return http.StatusUnprocessableEntity
	case "INVALID_INPUT", "INVALID_CLASSIFICATION", "NOT_THERMAL":
		return http.StatusBadRequest
	case "RENDERER_UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
