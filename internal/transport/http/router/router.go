package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-members-board/internal/core/auth"
	"go-members-board/internal/core/config"
	"go-members-board/internal/core/session"
	"go-members-board/internal/repo"
	"go-members-board/internal/transport/http/handler"
	mdw "go-members-board/internal/transport/http/middleware"
	"go-members-board/internal/transport/http/render"
)

// Deps 进程启动时装配一次，显式注入，不走全局注册
type Deps struct {
	Log      *zap.Logger
	DB       *gorm.DB
	Sessions session.Store
	Cfg      *config.Config
}

func NewEngine(d Deps) *gin.Engine {
	if d.Cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.LoadHTMLGlob(d.Cfg.View.TemplateGlob)
	r.Static("/static", "./web/static")

	users := repo.NewUserRepo(d.DB)
	messages := repo.NewMessageRepo(d.DB)
	verifier := auth.NewVerifier(users)

	r.Use(mdw.SessionAuth(d.Sessions, users, d.Cfg.Session.CookieName))

	uh := &handler.UserHandler{
		Users:      users,
		Verifier:   verifier,
		Sessions:   d.Sessions,
		CookieName: d.Cfg.Session.CookieName,
		SessionTTL: time.Duration(d.Cfg.Session.TTLHours) * time.Hour,
		Passcode:   d.Cfg.Club.Passcode,
		Log:        d.Log,
	}
	mh := handler.NewMessageHandler(messages, d.Log)

	mount(r, uh, mh)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 未匹配路由 → 404 页
	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, render.NotFound("Not Found"))
	})

	return r
}

func mount(r *gin.Engine, uh *handler.UserHandler, mh *handler.MessageHandler) {
	r.GET("/", mh.List)

	msgs := r.Group("/messages")
	{
		// 建帖的查看与提交都要求已登录身份
		gated := msgs.Group("", mdw.RequireUser("Only users with account can create a new message"))
		gated.GET("/create", mh.CreateView)
		gated.POST("/create", mh.CreateSubmit)

		// 删除不校验归属，与来源行为一致
		msgs.POST("/delete/:id", mh.DeleteSubmit)
	}

	us := r.Group("/users")
	{
		us.GET("/sign_up", uh.SignUpView)
		us.POST("/sign_up", uh.SignUpSubmit)
		us.GET("/join_club/:id", uh.JoinClubView)
		us.POST("/join_club/:id", uh.JoinClubSubmit)
		us.GET("/sign_in", uh.SignInView)
		us.POST("/sign_in", uh.SignInSubmit)
		us.GET("/log_out", uh.LogOut)
	}
}
