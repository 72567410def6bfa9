package render

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError 带状态码的终端错误，统一由错误页兜底
type HTTPError struct {
	Status int
	Msg    string
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *HTTPError) Unwrap() error { return e.Err }

func BadRequest(msg string) *HTTPError   { return &HTTPError{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) *HTTPError { return &HTTPError{Status: http.StatusUnauthorized, Msg: msg} }
func NotFound(msg string) *HTTPError     { return &HTTPError{Status: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

// ErrorPage 渲染通用错误页。堆栈细节只在非 release 模式展示
func ErrorPage(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	var he *HTTPError
	if errors.As(err, &he) {
		status = he.Status
		msg = he.Error()
	} else if err != nil {
		msg = err.Error()
	}

	detail := ""
	if gin.Mode() != gin.ReleaseMode && err != nil {
		if he != nil && he.Err != nil {
			detail = he.Err.Error()
		} else {
			detail = err.Error()
		}
	}

	c.HTML(status, "error.tmpl", gin.H{
		"title":  fmt.Sprintf("%d-%s", status, msg),
		"status": status,
		"msg":    msg,
		"detail": detail,
	})
	c.Abort()
}
