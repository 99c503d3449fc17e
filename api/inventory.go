package api

import (
	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/equipment"
)

func (h *Handler) equipmentResource() resource[equipment.Equipment] {
	return resource[equipment.Equipment]{
		h:        h,
		path:     "/equipment",
		template: "equipment",
		title:    "Equipment",
		records:  h.equipment,
		uploads:  h.equipment,
		validate: equipment.Validate,
		prepare: func(_ echo.Context, e equipment.Equipment) equipment.Equipment {
			return equipment.Normalize(e)
		},
		label: func(e equipment.Equipment) string {
			return e.Name
		},
		extra: func(_ echo.Context, items []equipment.Equipment) (map[string]any, error) {
			return map[string]any{
				"Statuses":  equipment.Statuses,
				"Available": equipment.Available(items),
			}, nil
		},
	}
}

func (h *Handler) SetEquipmentStatus(c echo.Context) error {
	updated, err := h.equipment.SetStatus(c.Request().Context(), c.Param("id"), c.FormValue("status"))
	if err != nil {
		return h.redirectWithFlash(c, "/equipment", err, "")
	}
	return h.redirectWithFlash(c, "/equipment", nil, updated.Name+" is now "+updated.Status)
}
