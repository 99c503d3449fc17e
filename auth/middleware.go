package auth

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
)

type SessionMiddlewareOpts struct {
	// Skipper marks public routes that do not need a session.
	Skipper middleware.Skipper
}

// NewSessionMiddleware attaches the session and its bearer token to the request
// context. Requests without a session are sent to the login page, and so are
// requests the backend rejects as unauthorized.
func NewSessionMiddleware(authenticator Authenticator, opts SessionMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := authenticator.Authenticate(c)
			if session != nil {
				SetSession(c, session)
				ctx := backend.WithToken(c.Request().Context(), session.Token)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			if session == nil && (opts.Skipper == nil || !opts.Skipper(c)) {
				return redirectToLogin(c, cookieRole(c))
			}

			err := next(c)
			if err != nil && errors.Is(err, errs.Unauthorized) {
				role := cookieRole(c)
				if session != nil {
					role = session.Role
				}
				authenticator.EndSession(c)
				return redirectToLogin(c, role)
			}
			return err
		}
	}
}

// cookieRole guesses the login page from the session cookies still sent by
// the browser, valid or not.
func cookieRole(c echo.Context) Role {
	if _, err := c.Cookie(AdminCookieName); err == nil {
		return RoleAdmin
	}
	if _, err := c.Cookie(VcmCookieName); err == nil {
		return RoleVcm
	}
	return RoleAdmin
}

func redirectToLogin(c echo.Context, role Role) error {
	target := role.LoginPath()
	if c.Request().Method == http.MethodGet && c.Request().URL.Path != "/" {
		target += "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
	}
	return c.Redirect(http.StatusSeeOther, target)
}
