package handler

import (
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-members-board/internal/domain"
	mdw "go-members-board/internal/transport/http/middleware"
	"go-members-board/internal/transport/http/render"
	"go-members-board/pkg/utils"
)

type MessageHandler struct {
	Messages domain.MessageRepository
	Log      *zap.Logger
}

func NewMessageHandler(messages domain.MessageRepository, l *zap.Logger) *MessageHandler {
	return &MessageHandler{Messages: messages, Log: l}
}

// List 首页：全部留言联作者，无分页无过滤
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.Messages.ListWithAuthors()
	if err != nil {
		render.ErrorPage(c, render.Internal("failed to load messages", err))
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", pageData(c, gin.H{
		"title":    "Members Only",
		"messages": msgs,
	}))
}

func (h *MessageHandler) CreateView(c *gin.Context) {
	c.HTML(http.StatusOK, "message_form.tmpl", pageData(c, gin.H{
		"title": "Create a new Message",
	}))
}

type messageForm struct {
	Title   string `form:"title"`
	Message string `form:"message"`
}

func (h *MessageHandler) CreateSubmit(c *gin.Context) {
	var in messageForm
	if err := c.ShouldBind(&in); err != nil {
		render.ErrorPage(c, render.BadRequest(err.Error()))
		return
	}

	title := html.EscapeString(strings.TrimSpace(in.Title))
	text := html.EscapeString(strings.TrimSpace(in.Message))

	var errs fieldErrors
	if title == "" {
		errs.add("A title is required")
	}
	if text == "" {
		errs.add("A message body is required")
	}

	msg := domain.Message{Title: title, Text: text}

	if !errs.empty() {
		c.HTML(http.StatusOK, "message_form.tmpl", pageData(c, gin.H{
			"title":   "Create a new Message",
			"message": &msg,
			"errors":  errs.all(),
		}))
		return
	}

	u := mdw.CurrentUser(c)
	msg.ID = utils.NewID()
	msg.CreatedAt = time.Now()
	msg.AuthorID = u.ID

	if err := h.Messages.Create(&msg); err != nil {
		render.ErrorPage(c, render.Internal("failed to save message", err))
		return
	}
	h.Log.Info("message created", zap.String("id", msg.ID), zap.String("author", u.ID))
	c.Redirect(http.StatusFound, "/")
}

// DeleteSubmit 按 id 删除。与原行为一致：不校验归属/角色，不校验存在性
func (h *MessageHandler) DeleteSubmit(c *gin.Context) {
	id := c.Param("id")
	if err := h.Messages.DeleteByID(id); err != nil {
		render.ErrorPage(c, render.Internal("failed to delete message", err))
		return
	}
	h.Log.Info("message deleted", zap.String("id", id))
	c.Redirect(http.StatusFound, "/")
}
