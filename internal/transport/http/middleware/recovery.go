package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-members-board/internal/transport/http/render"
)

func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.String("rid", c.GetString(KeyRequestID)),
					zap.Any("panic", rec),
				)
				if !c.Writer.Written() {
					render.ErrorPage(c, render.Internal("internal error", fmt.Errorf("%v", rec)))
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
