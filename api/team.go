package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/validation"
	"github.com/pallium-care/console/vcm"
)

type registrationView struct {
	Form   vcm.Registration
	Roles  []vcm.Role
	Errors validation.Errors
}

func (h *Handler) RegistrationPage(c echo.Context) error {
	form := vcm.Registration{Role: c.QueryParam("role")}
	return h.render(c, http.StatusOK, "register", "Join the care team", registrationView{
		Form:  form,
		Roles: vcm.Roles,
	})
}

func (h *Handler) Register(c echo.Context) error {
	view := registrationView{Roles: vcm.Roles}
	if err := c.Bind(&view.Form); err != nil {
		return err
	}
	if view.Errors = view.Form.Validate(); view.Errors.HasErrors() {
		return h.render(c, http.StatusUnprocessableEntity, "register", "Join the care team", view)
	}

	member, err := h.vcm.Register(c.Request().Context(), view.Form)
	if err != nil {
		if errors.Is(err, errs.Unauthorized) {
			return err
		}
		p := h.page(c, "Join the care team", view)
		p.Flash = &Flash{Kind: FlashError, Message: errs.FriendlyMessage(err)}
		return c.Render(errs.StatusCode(err), "register", p)
	}

	return h.redirectWithFlash(c, "/register", nil, "Thank you for registering, "+member.Name)
}
