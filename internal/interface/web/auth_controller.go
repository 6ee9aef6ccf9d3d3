package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/user"
	"file-uploader/internal/interface/web/dto/auth"
	"file-uploader/internal/interface/web/middleware"
	"file-uploader/internal/interface/web/validator"
)

const msgBadCredentials = "Incorrect username or password"

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
	cookie      middleware.CookieConfig
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	cookie middleware.CookieConfig,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
		cookie:      cookie,
	}

	r.GET(RouteSignup, ac.SignupFormHandler)
	r.POST(RouteSignup, ac.SignupHandler)
	r.GET(RouteLogin, ac.LoginFormHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteLogout, ac.LogoutHandler)

	return ac
}

func (ac *AuthController) SignupFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", newPage(c, "Sign up"))
}

func (ac *AuthController) LoginFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", newPage(c, "Log in"))
}

func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		ac.renderSignup(c, http.StatusBadRequest, req, "Invalid form")
		return
	}

	if err := validator.ValidateSignup(&req); err != nil {
		ac.renderSignup(c, http.StatusBadRequest, req, validationMessage(err))
		return
	}

	u, err := ac.userService.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			ac.renderSignup(c, http.StatusBadRequest, req, "Username is already taken")
		case errors.Is(err, user.ErrEmailTaken):
			ac.renderSignup(c, http.StatusBadRequest, req, "Email is already registered")
		default:
			_ = c.Error(err)
		}
		return
	}

	ac.logger.Info("user signed up", zap.Int64("user_id", u.ID))
	ac.startSession(c, u)
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		ac.renderLogin(c, http.StatusBadRequest, req, "Invalid form")
		return
	}

	if err := validator.ValidateLogin(&req); err != nil {
		ac.renderLogin(c, http.StatusBadRequest, req, validationMessage(err))
		return
	}

	u, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			ac.renderLogin(c, http.StatusUnauthorized, req, msgBadCredentials)
			return
		}
		_ = c.Error(err)
		return
	}

	ac.startSession(c, u)
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	middleware.ClearSessionCookie(c, ac.cookie)
	redirect(c, RouteHome)
}

func (ac *AuthController) startSession(c *gin.Context, u *user.User) {
	token, err := ac.authService.IssueToken(u)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, token, ac.cookie)
	redirect(c, RouteHome)
}

func (ac *AuthController) renderSignup(c *gin.Context, status int, req auth.SignupRequest, msg string) {
	p := newPage(c, "Sign up")
	p.Error = msg
	p.Username = req.Username
	p.Email = req.Email
	c.HTML(status, "signup.html", p)
}

func (ac *AuthController) renderLogin(c *gin.Context, status int, req auth.LoginRequest, msg string) {
	p := newPage(c, "Log in")
	p.Error = msg
	p.Username = req.Username
	c.HTML(status, "login.html", p)
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return "Invalid input"
}
