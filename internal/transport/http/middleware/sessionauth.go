package middleware

import (
	"github.com/gin-gonic/gin"

	"go-members-board/internal/core/session"
	"go-members-board/internal/domain"
	"go-members-board/internal/transport/http/render"
)

const (
	keySession     = "session"
	keyCurrentUser = "currentUser"
)

// SessionAuth 从不透明 cookie 解析会话，并按会话中的用户 id 回查身份。
// 解析失败不拦截，后续由 RequireUser 决定是否放行。
func SessionAuth(store session.Store, users domain.UserRepository, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}
		sess, err := store.Get(c.Request.Context(), id)
		if err != nil || sess == nil {
			c.Next()
			return
		}
		c.Set(keySession, sess)
		if sess.UserID != "" {
			// 每次请求重新取用户，保证状态变化即时生效
			u, err := users.FindByID(sess.UserID)
			if err == nil && u != nil {
				c.Set(keyCurrentUser, u)
			}
		}
		c.Next()
	}
}

// RequireUser 未登录即 401 错误页
func RequireUser(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			render.ErrorPage(c, render.Unauthorized(msg))
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyCurrentUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(keySession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
