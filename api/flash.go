package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	errs "github.com/pallium-care/console/errors"
)

const flashCookieName = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one time toast carried to the next page in a cookie.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c echo.Context, kind, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:   flashCookieName,
		Path:   "/",
		MaxAge: -1,
	})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

// redirectWithFlash finishes a form post. Unauthorized errors are returned so
// the session middleware can send the user back to the login page.
func (h *Handler) redirectWithFlash(c echo.Context, target string, err error, success string) error {
	if err != nil {
		if errors.Is(err, errs.Unauthorized) {
			return err
		}
		h.logger.Infow("request failed", "path", c.Request().URL.Path, "error", err)
		setFlash(c, FlashError, errs.FriendlyMessage(err))
	} else if success != "" {
		setFlash(c, FlashSuccess, success)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
