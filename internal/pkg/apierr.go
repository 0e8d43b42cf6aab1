package pkg

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError 业务错误，集中映射为 HTTP 状态码
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func Unauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: msg}
}

func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

// WriteError 统一错误出口；未识别的错误按 500 返回其字符串形式
func WriteError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"success": false, "message": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}
