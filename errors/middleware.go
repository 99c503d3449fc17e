package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler converts HttpError values to echo errors and logs
// everything that ends up as a server error.
func NewHTTPErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		e := HttpError{}
		he := &echo.HTTPError{}
		if errors.As(err, &e) {
			code = e.Code
			err = echo.NewHTTPError(e.Code, err.Error())
		} else if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			logger.Errorw("request failed", "path", c.Request().URL.Path, "method", c.Request().Method, zap.Error(err))
		}
		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}
