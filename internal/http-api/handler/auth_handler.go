package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/http-api/validation"
	"locallibrary/internal/metrics"
)

// Sessions starts and ends browser sessions.
type Sessions interface {
	Start(ctx context.Context, w http.ResponseWriter, userID string) error
	End(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type AuthHandler struct {
	authService service.AuthService
	sessions    Sessions
}

func NewAuthHandler(authService service.AuthService, sessions Sessions) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Options)
	rg.GET("/signup", h.SignupForm)
	rg.POST("/signup", h.Signup)
	rg.GET("/login", h.LoginForm)
	rg.POST("/login", h.Login)
	rg.GET("/logout", h.Logout)
}

func (h *AuthHandler) Options(c *gin.Context) {
	c.Redirect(http.StatusFound, "/auth/login")
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	render(c, "sign_up_form", gin.H{
		"title":    "Create Account",
		"username": "",
		"errors":   []validation.Violation{},
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed signup form"))
		return
	}

	in, violations := validation.CheckSignup(form.Username, form.Password, form.AdminCode)
	if len(violations) > 0 {
		metrics.RecordAuth("signup", "invalid")
		h.renderSignup(c, in.Username, violations)
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	user, err := h.authService.Register(ctx, service.SignupInput{
		Username:  in.Username,
		Password:  in.Password,
		AdminCode: in.AdminCode,
	})
	if errors.Is(err, service.ErrNameInUse) {
		metrics.RecordAuth("signup", "taken")
		violations = append(violations, validation.Violation{Field: "username", Msg: "Username is taken!"})
		h.renderSignup(c, in.Username, violations)
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	metrics.RecordAuth("signup", "success")

	// the account exists either way; without a session the user logs in by hand
	if err := h.sessions.Start(ctx, c.Writer, user.ID); err != nil {
		middleware.Logger(c).Error("session start after signup failed", "user_id", user.ID, "error", err)
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}
	c.Redirect(http.StatusFound, "/catalog")
}

func (h *AuthHandler) renderSignup(c *gin.Context, username string, violations []validation.Violation) {
	render(c, "sign_up_form", gin.H{
		"title":    "Create Account",
		"username": username,
		"errors":   violations,
	})
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, "login_form", gin.H{"title": "Login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed login form"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	user, err := h.authService.Login(ctx, validation.Sanitize(form.Username), strings.TrimSpace(form.Password))
	if errors.Is(err, service.ErrInvalidCredentials) {
		metrics.RecordAuth("login", "failure")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	// a session carried in from an earlier login must not outlive this one
	if err := h.sessions.End(ctx, c.Writer, c.Request); err != nil {
		middleware.Logger(c).Warn("previous session destroy failed", "error", err)
	}
	if err := h.sessions.Start(ctx, c.Writer, user.ID); err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	metrics.RecordAuth("login", "success")
	c.Redirect(http.StatusFound, "/catalog")
}

// Logout always succeeds from the visitor's point of view.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	if err := h.sessions.End(ctx, c.Writer, c.Request); err != nil {
		middleware.Logger(c).Warn("session destroy failed", "error", err)
	}
	metrics.RecordAuth("logout", "success")
	c.Redirect(http.StatusFound, "/auth")
}
