package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody single-message error response
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldErrorBody per-field error response
type FieldErrorBody struct {
	Errors    map[string]string `json:"errors"`
	RequestID string            `json:"request_id,omitempty"`
}

// MessageBody plain confirmation response
type MessageBody struct {
	Message string `json:"message"`
}

// OK writes a 200 with the payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message writes a 200 confirmation message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// NotFound writes a 404 with a single message.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Error writes an error response with the given HTTP status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{
		Error:     msg,
		RequestID: requestID(c),
	})
}

// FieldErrors writes a 400 carrying the per-field message map.
func FieldErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, FieldErrorBody{
		Errors:    errs,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
