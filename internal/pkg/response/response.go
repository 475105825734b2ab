package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success payloads are the bare object or array; errors carry a single
// detail string. Both shapes are wire-format and shared with the frontend.

// DetailResponse is the standard error payload.
type DetailResponse struct {
	Detail string `json:"detail" example:"To-Do item not found"`
}

// MessageResponse acknowledges a mutation that returns no record.
type MessageResponse struct {
	Message string `json:"message" example:"Reset complete"`
}

// OK sends a 200 with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 acknowledgement.
func Message(c *gin.Context, text string) {
	c.JSON(http.StatusOK, MessageResponse{Message: text})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, DetailResponse{Detail: detail})
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound sends a 404 Not Found error.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// ValidationError sends a 422 Unprocessable Entity error.
func ValidationError(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

// InternalServerError sends a 500 Internal Server Error.
func InternalServerError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
