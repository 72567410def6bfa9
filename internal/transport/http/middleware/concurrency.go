package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-members-board/internal/transport/http/render"
)

// ConcurrencyLimit 限制同时在处理的请求数（保护 DB 下游）
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			render.ErrorPage(c, &render.HTTPError{Status: http.StatusServiceUnavailable, Msg: "server busy"})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
