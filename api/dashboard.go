package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/statistics"
	"github.com/pallium-care/console/tasks"
)

const dashboardTasks = 5

type dashboardView struct {
	Stats  *statistics.Statistics
	Visits []schedules.Schedule
	Tasks  []tasks.Task
	Now    time.Time
}

func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	view := dashboardView{Now: h.now()}

	var failure error
	stats, err := h.statistics.Get(ctx)
	if err != nil {
		failure = err
	}
	view.Stats = stats

	if visits, err := h.schedules.Upcoming(ctx, schedules.Today, view.Now); err == nil {
		view.Visits = visits
	} else if failure == nil {
		failure = err
	}

	if list, err := h.tasks.Ordered(ctx); err == nil {
		for _, t := range list {
			if t.Status != tasks.StatusCompleted && len(view.Tasks) < dashboardTasks {
				view.Tasks = append(view.Tasks, t)
			}
		}
	} else if failure == nil {
		failure = err
	}

	if errors.Is(failure, errs.Unauthorized) {
		return failure
	}
	p := h.page(c, "Dashboard", view)
	if failure != nil {
		h.logger.Infow("dashboard is incomplete", "error", failure)
		p.Flash = &Flash{Kind: FlashError, Message: errs.FriendlyMessage(failure)}
	}
	return c.Render(http.StatusOK, "dashboard", p)
}
