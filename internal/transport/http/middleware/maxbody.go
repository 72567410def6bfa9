package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-members-board/internal/transport/http/render"
)

// MaxBodyBytes 限制请求体大小
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			render.ErrorPage(c, render.BadRequest("request body too large"))
		}
	}
}
