package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	errs "github.com/pallium-care/console/errors"
)

var pageErrors = map[int]errs.HttpError{
	http.StatusForbidden: errs.Forbidden,
	http.StatusNotFound:  errs.NotFound,
}

// errorPages renders forbidden and missing pages as html with an error toast.
// Every other error goes to fallback.
func (h *Handler) errorPages(fallback echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := statusOf(err)
		if sentinel, ok := pageErrors[code]; ok {
			p := h.page(c, http.StatusText(code), nil)
			p.Flash = &Flash{Kind: FlashError, Message: errs.FriendlyMessage(sentinel)}
			if renderErr := c.Render(code, "error", p); renderErr == nil {
				return
			}
		}
		fallback(err, c)
	}
}

func statusOf(err error) int {
	he := &echo.HTTPError{}
	if errors.As(err, &he) {
		return he.Code
	}
	return errs.StatusCode(err)
}
