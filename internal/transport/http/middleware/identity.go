package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contact-book-api/internal/core/auth"
	resp "contact-book-api/internal/transport/http/response"
)

// 请求身份上下文 key
const (
	KeyUserID   = "userId"
	KeyUsername = "username"
	KeyScopes   = "scopes"
)

// Identity 从 Authorization: Bearer 取 token 并填充身份。
// 这一层从不拒绝请求：没有/失效/伪造的 token 都按匿名放行，
// 需要登录的路由由后面的守卫给 401。
func Identity(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if strings.HasPrefix(ah, "Bearer ") {
			if claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer ")); err == nil {
				c.Set(KeyUserID, claims.Subject)
				c.Set(KeyUsername, claims.Username)
				c.Set(KeyScopes, claims.Scopes)
			}
		}
		c.Next()
	}
}

// RequireAuth 匿名请求到这里拦下
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyUserID) == "" {
			resp.FailCode(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}

// RequireScope 匿名给 401，已登录但没权限给 403
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyUserID) == "" {
			resp.FailCode(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !hasScope(c.GetStringSlice(KeyScopes), scope) {
			resp.FailCode(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

func hasScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
