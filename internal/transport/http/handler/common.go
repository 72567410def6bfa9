package handler

import (
	"github.com/gin-gonic/gin"

	mdw "go-members-board/internal/transport/http/middleware"
)

// pageData 每页公共视图数据（当前登录人）
func pageData(c *gin.Context, h gin.H) gin.H {
	if h == nil {
		h = gin.H{}
	}
	h["currentUser"] = mdw.CurrentUser(c)
	return h
}

// fieldErrors 按提交顺序收集、去重的表单错误
type fieldErrors struct {
	list []string
	seen map[string]struct{}
}

func (f *fieldErrors) add(msg string) {
	if msg == "" {
		return
	}
	if f.seen == nil {
		f.seen = map[string]struct{}{}
	}
	if _, ok := f.seen[msg]; ok {
		return
	}
	f.seen[msg] = struct{}{}
	f.list = append(f.list, msg)
}

func (f *fieldErrors) empty() bool   { return len(f.list) == 0 }
func (f *fieldErrors) all() []string { return f.list }
