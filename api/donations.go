package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/donations"
)

func (h *Handler) emergencyFundResource() resource[donations.Entry] {
	return resource[donations.Entry]{
		h:        h,
		path:     "/emergency-fund",
		template: "emergency_fund",
		title:    "Emergency fund",
		records:  h.donations,
		uploads:  h.donations,
		validate: donations.Validate,
		prepare: func(_ echo.Context, e donations.Entry) donations.Entry {
			return donations.Normalize(e)
		},
		label: func(e donations.Entry) string {
			return "Donation from " + e.DonorName
		},
		list: func(c echo.Context) ([]donations.Entry, error) {
			return h.donations.Recent(c.Request().Context())
		},
		extra: func(_ echo.Context, items []donations.Entry) (map[string]any, error) {
			return map[string]any{"Total": donations.Total(items)}, nil
		},
	}
}

type donationView struct {
	Handle string
	Amount string
	Donor  string
	Error  string
	Plan   *donations.DispatchPlan
}

func (h *Handler) DonationPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "donate", "Donate", donationView{
		Handle: h.donations.Handle(),
		Amount: c.QueryParam("amount"),
	})
}

// Donate plans the UPI app links for the visitor's device. The page opens
// them with a small script; there is no confirmation from the payment apps.
func (h *Handler) Donate(c echo.Context) error {
	view := donationView{
		Handle: h.donations.Handle(),
		Amount: strings.TrimSpace(c.FormValue("amount")),
		Donor:  strings.TrimSpace(c.FormValue("donor_name")),
	}

	amount, err := h.donations.ParseAmount(view.Amount)
	if err != nil {
		view.Error = err.Error()
		return h.render(c, http.StatusUnprocessableEntity, "donate", "Donate", view)
	}

	plan := h.donations.Plan(c.Request().UserAgent(), amount, view.Donor)
	view.Plan = &plan
	return h.render(c, http.StatusOK, "donate", "Donate", view)
}
