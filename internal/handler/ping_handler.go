package handler

import (
	"net/http"

	"bitcast/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Ping 鉴权连通性测试
func Ping(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.String(http.StatusOK, "Hello! %s", user.Address)
}
