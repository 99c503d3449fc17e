package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/reports"
)

func exportReport[T any](h *Handler, c echo.Context, name, back string, report reports.Report[T], list func(context.Context) ([]T, error)) error {
	records, err := list(c.Request().Context())
	if err != nil {
		if errors.Is(err, errs.Unauthorized) {
			return err
		}
		return h.redirectWithFlash(c, back, err, "")
	}

	file, err := report.Generate(records)
	if err != nil {
		return err
	}

	filename := reports.Filename(name, h.now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set(echo.HeaderContentType, reports.ContentType)
	c.Response().WriteHeader(http.StatusOK)
	return file.Write(c.Response())
}

func (h *Handler) ExportPatients(c echo.Context) error {
	return exportReport(h, c, "patients", "/patients", reports.Patients, h.patients.List)
}

func (h *Handler) ExportEquipment(c echo.Context) error {
	return exportReport(h, c, "equipment", "/equipment", reports.Equipment, h.equipment.List)
}

func (h *Handler) ExportEmergencyFund(c echo.Context) error {
	return exportReport(h, c, "emergency-fund", "/emergency-fund", reports.EmergencyFund, h.donations.Recent)
}
