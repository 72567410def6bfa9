package handler

import (
	"errors"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-members-board/internal/core/auth"
	"go-members-board/internal/core/session"
	"go-members-board/internal/domain"
	"go-members-board/internal/repo"
	mdw "go-members-board/internal/transport/http/middleware"
	"go-members-board/internal/transport/http/render"
	"go-members-board/pkg/utils"
)

type UserHandler struct {
	Users      domain.UserRepository
	Verifier   *auth.Verifier
	Sessions   session.Store
	CookieName string
	SessionTTL time.Duration
	Passcode   string
	Log        *zap.Logger
}

// ---------- 注册 ----------

func (h *UserHandler) SignUpView(c *gin.Context) {
	c.HTML(http.StatusOK, "sign_up.tmpl", pageData(c, gin.H{"title": "Sign Up"}))
}

type signUpForm struct {
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email" binding:"omitempty,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"eqfield=Password"`
	IsAdmin         string `form:"is_admin"`
}

// 校验失败提示，按字段
var signUpMsgs = map[string]string{
	"Email":           "A valid email address is required",
	"Password":        "Password must be of length 6 at least",
	"ConfirmPassword": "Passwords do not match",
}

func (h *UserHandler) SignUpSubmit(c *gin.Context) {
	var in signUpForm
	var errs fieldErrors
	emailOK := true

	if err := c.ShouldBind(&in); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			render.ErrorPage(c, render.BadRequest(err.Error()))
			return
		}
		for _, fe := range ves {
			errs.add(signUpMsgs[fe.Field()])
			if fe.Field() == "Email" {
				emailOK = false
			}
		}
	}

	firstName := html.EscapeString(strings.TrimSpace(in.FirstName))
	lastName := html.EscapeString(strings.TrimSpace(in.LastName))
	email := html.EscapeString(strings.TrimSpace(in.Email))

	if firstName == "" {
		errs.add("Firstname must not be empty")
	}
	if lastName == "" {
		errs.add("Lastname must not be empty")
	}
	if email == "" {
		errs.add("A valid email address is required")
		emailOK = false
	}

	// 预查重复只为给出友好提示；真正的唯一性由 email 唯一索引兜底
	if emailOK {
		existing, err := h.Users.FindByEmail(email)
		if err != nil {
			render.ErrorPage(c, render.Internal("failed to check email", err))
			return
		}
		if existing != nil {
			errs.add("Email already in use.")
		}
	}

	status := domain.StatusOutsider
	if in.IsAdmin != "" {
		status = domain.StatusAdmin
	}

	u := domain.User{
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		MembershipStatus: status,
	}

	renderForm := func() {
		c.HTML(http.StatusOK, "sign_up.tmpl", pageData(c, gin.H{
			"title":  "Sign Up",
			"user":   &u,
			"errors": errs.all(),
		}))
	}

	if !errs.empty() {
		renderForm()
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		render.ErrorPage(c, render.Internal("password hashing failed", err))
		return
	}
	u.ID = utils.NewID()
	u.PasswordHash = hash

	if err := h.Users.Create(&u); err != nil {
		// 并发兜底：两个同邮箱注册同时过了预查，唯一索引拦下后来者
		if repo.IsDupKey(err) {
			errs.add("Email already in use.")
			renderForm()
			return
		}
		render.ErrorPage(c, render.Internal("failed to create user", err))
		return
	}
	h.Log.Info("user signed up", zap.String("id", u.ID), zap.String("status", u.MembershipStatus))

	if u.IsAdmin() {
		c.Redirect(http.StatusFound, "/users/sign_in")
		return
	}
	c.Redirect(http.StatusFound, u.JoinClubPath())
}

// ---------- 入会 ----------

func (h *UserHandler) JoinClubView(c *gin.Context) {
	c.HTML(http.StatusOK, "join_club.tmpl", pageData(c, gin.H{"title": "Join The Club"}))
}

func (h *UserHandler) JoinClubSubmit(c *gin.Context) {
	passcode := c.PostForm("passcode")

	var errs fieldErrors
	if passcode == "" {
		errs.add("A passcode is required to join the club!")
	} else if passcode != h.Passcode {
		errs.add(`The secret passcode you provided is not working :\`)
	}

	if !errs.empty() {
		c.HTML(http.StatusOK, "join_club.tmpl", pageData(c, gin.H{
			"title":  "Join The Club",
			"errors": errs.all(),
		}))
		return
	}

	u, err := h.Users.FindByID(c.Param("id"))
	if err != nil {
		render.ErrorPage(c, render.Internal("failed to load user", err))
		return
	}
	if u == nil {
		render.ErrorPage(c, render.NotFound("User not found"))
		return
	}

	// outsider → member；重复提交保持 member，幂等
	if !u.IsAdmin() {
		u.MembershipStatus = domain.StatusMember
	}
	if err := h.Users.Update(u); err != nil {
		render.ErrorPage(c, render.Internal("failed to update membership", err))
		return
	}
	h.Log.Info("user joined the club", zap.String("id", u.ID))
	c.Redirect(http.StatusFound, "/users/sign_in")
}

// ---------- 登录 / 登出 ----------

func (h *UserHandler) SignInView(c *gin.Context) {
	var msgs []string
	// 上次失败原因存在会话 flash 里，读后即清
	if sess := mdw.CurrentSession(c); sess != nil && sess.Flash != "" {
		msgs = append(msgs, sess.Flash)
		sess.Flash = ""
		_ = h.Sessions.Save(c.Request.Context(), sess)
	}
	c.HTML(http.StatusOK, "sign_in.tmpl", pageData(c, gin.H{
		"title":  "Log In",
		"errors": msgs,
	}))
}

type signInForm struct {
	Email    string `form:"email" binding:"omitempty,email"`
	Password string `form:"password"`
}

func (h *UserHandler) SignInSubmit(c *gin.Context) {
	var in signInForm
	failMsg := ""

	if err := c.ShouldBind(&in); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			render.ErrorPage(c, render.BadRequest(err.Error()))
			return
		}
		failMsg = "A valid email address is required"
	}

	email := strings.TrimSpace(in.Email)
	if failMsg == "" && email == "" {
		failMsg = "A valid email address is required"
	}
	if failMsg == "" && in.Password == "" {
		failMsg = "Password is required to log in"
	}

	if failMsg == "" {
		u, err := h.Verifier.Verify(email, in.Password)
		switch {
		case err == nil:
			h.establish(c, u)
			return
		case errors.Is(err, auth.ErrIncorrectEmail) || errors.Is(err, auth.ErrIncorrectPassword):
			failMsg = err.Error()
		default:
			render.ErrorPage(c, render.Internal("sign in failed", err))
			return
		}
	}

	h.flashAndRetry(c, failMsg)
}

// establish 登录成功：换新会话 id，旧会话作废
func (h *UserHandler) establish(c *gin.Context, u *domain.User) {
	ctx := c.Request.Context()
	if old := mdw.CurrentSession(c); old != nil {
		_ = h.Sessions.Destroy(ctx, old.ID)
	}
	sess := session.New(u.ID, h.SessionTTL)
	if err := h.Sessions.Save(ctx, sess); err != nil {
		render.ErrorPage(c, render.Internal("failed to save session", err))
		return
	}
	h.setCookie(c, sess.ID, int(h.SessionTTL.Seconds()))
	h.Log.Info("user signed in", zap.String("id", u.ID))
	c.Redirect(http.StatusFound, "/")
}

// flashAndRetry 失败原因记入会话，再回登录页
func (h *UserHandler) flashAndRetry(c *gin.Context, msg string) {
	ctx := c.Request.Context()
	sess := mdw.CurrentSession(c)
	if sess == nil {
		sess = session.New("", h.SessionTTL)
		h.setCookie(c, sess.ID, int(h.SessionTTL.Seconds()))
	}
	sess.Flash = msg
	if err := h.Sessions.Save(ctx, sess); err != nil {
		render.ErrorPage(c, render.Internal("failed to save session", err))
		return
	}
	c.Redirect(http.StatusFound, "/users/sign_in")
}

func (h *UserHandler) LogOut(c *gin.Context) {
	if sess := mdw.CurrentSession(c); sess != nil {
		if err := h.Sessions.Destroy(c.Request.Context(), sess.ID); err != nil {
			render.ErrorPage(c, render.Internal("failed to end session", err))
			return
		}
	}
	h.setCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(h.CookieName, value, maxAge, "/", "", false, true)
}
