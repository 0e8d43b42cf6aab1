package middleware

import (
	"strings"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "auth_user"

// AuthUser 解出的请求者身份
type AuthUser struct {
	ID      uint64
	Address string
}

type UserFinder interface {
	FindByID(id uint64) (*model.User, error)
}

// 兼容 "Bearer <token>" 与裸 token 两种写法
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return parts[0]
}

// Auth 必须带合法 token，校验通过后把身份注入上下文
func Auth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			pkg.WriteError(c, pkg.Unauthorized("No token provided"))
			c.Abort()
			return
		}
		authenticate(c, users, token)
	}
}

// PartialAuth 无 token 放行为匿名；带了 token 就必须合法
func PartialAuth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		authenticate(c, users, token)
	}
}

func authenticate(c *gin.Context, users UserFinder, token string) {
	claims, err := pkg.ParseToken(token)
	if err != nil {
		pkg.WriteError(c, pkg.Unauthorized("Invalid token"))
		c.Abort()
		return
	}

	// token 合法还不够，用户必须仍然存在
	if _, err := users.FindByID(claims.ID); err != nil {
		pkg.WriteError(c, pkg.Unauthorized("Invalid user"))
		c.Abort()
		return
	}

	c.Set(ContextUserKey, AuthUser{ID: claims.ID, Address: claims.Address})
	c.Next()
}

// CurrentUser 读出中间件注入的身份；匿名请求返回 false
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return AuthUser{}, false
	}
	user, ok := v.(AuthUser)
	return user, ok
}
