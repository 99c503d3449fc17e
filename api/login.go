package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
)

var backendLoginPaths = map[auth.Role]string{
	auth.RoleAdmin: backend.AdminLoginPath,
	auth.RoleVcm:   backend.VcmLoginPath,
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type loginView struct {
	Role   auth.Role
	Action string
	Email  string
	Next   string
	Error  string
}

// safeNext only follows local paths after a login.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func loginTitle(role auth.Role) string {
	if role == auth.RoleVcm {
		return "VCM login"
	}
	return "Admin login"
}

func (h *Handler) LoginPage(role auth.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		next := safeNext(c.QueryParam("next"))
		if session := auth.GetSession(c.Request().Context()); session != nil {
			return c.Redirect(http.StatusSeeOther, next)
		}
		return h.render(c, http.StatusOK, "login", loginTitle(role), loginView{
			Role:   role,
			Action: role.LoginPath(),
			Next:   next,
		})
	}
}

func (h *Handler) Login(role auth.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		form := loginForm{}
		if err := c.Bind(&form); err != nil {
			return err
		}
		view := loginView{
			Role:   role,
			Action: role.LoginPath(),
			Email:  strings.TrimSpace(form.Email),
			Next:   safeNext(form.Next),
		}
		if view.Email == "" || form.Password == "" {
			view.Error = "Email and password are required"
			return h.render(c, http.StatusUnprocessableEntity, "login", loginTitle(role), view)
		}

		token, err := h.client.Login(c.Request().Context(), backendLoginPaths[role], backend.Credentials{
			Email:    view.Email,
			Password: form.Password,
		})
		if err != nil {
			h.logger.Infow("login failed", "role", role, "error", err)
			view.Error = loginFailure(err)
			return h.render(c, errs.StatusCode(err), "login", loginTitle(role), view)
		}

		if _, err := h.authenticator.StartSession(c, role, token); err != nil {
			h.logger.Warnw("unable to start session", "role", role, "error", err)
			view.Error = "The server returned an invalid session. Please try again."
			return h.render(c, http.StatusBadGateway, "login", loginTitle(role), view)
		}

		setFlash(c, FlashSuccess, "Welcome back")
		return c.Redirect(http.StatusSeeOther, view.Next)
	}
}

func loginFailure(err error) string {
	if errors.Is(err, errs.Unauthorized) || errors.Is(err, errs.BadRequest) || errors.Is(err, errs.NotFound) {
		return "Invalid email or password"
	}
	return errs.FriendlyMessage(err)
}

func (h *Handler) Logout(c echo.Context) error {
	role := auth.RoleAdmin
	if session := auth.GetSession(c.Request().Context()); session != nil {
		role = session.Role
	}
	h.authenticator.EndSession(c)
	setFlash(c, FlashSuccess, "You have been logged out")
	return c.Redirect(http.StatusSeeOther, role.LoginPath())
}
