package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/assignments"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/tasks"
	"github.com/pallium-care/console/validation"
)

func (h *Handler) scheduleResource() resource[schedules.Schedule] {
	return resource[schedules.Schedule]{
		h:        h,
		path:     "/schedules",
		template: "schedules",
		title:    "Schedules",
		records:  h.schedules,
		validate: schedules.Validate,
		prepare: func(c echo.Context, s schedules.Schedule) schedules.Schedule {
			ctx := c.Request().Context()
			s.PatientName = h.patientName(ctx, s.PatientId)
			if members, err := h.membersById(ctx, s.MemberId); err == nil && len(members) > 0 {
				s.MemberName = members[0].Name
			}
			return s
		},
		label: func(s schedules.Schedule) string {
			return fmt.Sprintf("Visit on %s", s.DisplayDate())
		},
		list: func(c echo.Context) ([]schedules.Schedule, error) {
			mode := schedules.ParseMode(c.QueryParam("mode"))
			return h.schedules.Upcoming(c.Request().Context(), mode, h.now())
		},
		extra: func(c echo.Context, _ []schedules.Schedule) (map[string]any, error) {
			extra := map[string]any{
				"Modes": schedules.Modes,
				"Mode":  schedules.ParseMode(c.QueryParam("mode")),
			}
			return extra, h.addPickers(c, extra)
		},
	}
}

func (h *Handler) taskResource() resource[tasks.Task] {
	return resource[tasks.Task]{
		h:        h,
		path:     "/tasks",
		template: "tasks",
		title:    "Tasks",
		records:  h.tasks,
		validate: tasks.Validate,
		prepare: func(_ echo.Context, t tasks.Task) tasks.Task {
			return tasks.Normalize(t)
		},
		label: func(t tasks.Task) string {
			return t.Title
		},
		list: func(c echo.Context) ([]tasks.Task, error) {
			return h.tasks.Ordered(c.Request().Context())
		},
		extra: func(c echo.Context, _ []tasks.Task) (map[string]any, error) {
			extra := map[string]any{
				"Priorities": tasks.Priorities,
				"Statuses":   tasks.Statuses,
				"Now":        h.now(),
			}
			return extra, h.addPickers(c, extra)
		},
	}
}

func (h *Handler) SetTaskStatus(c echo.Context) error {
	status := c.FormValue("status")
	invalid := validation.Errors{}
	invalid.OneOf("status", status, tasks.Statuses...)
	if invalid.HasErrors() {
		setFlash(c, FlashError, invalid.Message("status"))
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	updated, err := h.tasks.SetStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return h.redirectWithFlash(c, "/tasks", err, "")
	}
	return h.redirectWithFlash(c, "/tasks", nil, fmt.Sprintf("%s is now %s", updated.Title, updated.Status))
}

func (h *Handler) assignmentResource() resource[assignments.Assignment] {
	return resource[assignments.Assignment]{
		h:        h,
		path:     "/assignments",
		template: "assignments",
		title:    "Assignments",
		records:  h.assignments,
		validate: assignments.Validate,
		label: func(a assignments.Assignment) string {
			return fmt.Sprintf("Assignment of %s", a.MemberName)
		},
		list: func(c echo.Context) ([]assignments.Assignment, error) {
			if patientId := c.QueryParam("patient"); patientId != "" {
				return h.assignments.ForPatient(c.Request().Context(), patientId)
			}
			return h.assignments.List(c.Request().Context())
		},
		extra: func(c echo.Context, _ []assignments.Assignment) (map[string]any, error) {
			extra := map[string]any{
				"Statuses": []string{assignments.StatusActive, assignments.StatusCompleted},
			}
			return extra, h.addPickers(c, extra)
		},
		create: h.AssignMembers,
	}
}

type bulkForm struct {
	PatientId    string   `form:"patient_id"`
	MemberIds    []string `form:"member_id"`
	AssignedDate string   `form:"assigned_date"`
}

// AssignMembers assigns one patient to every picked team member.
func (h *Handler) AssignMembers(c echo.Context) error {
	ctx := c.Request().Context()
	form := bulkForm{}
	if err := c.Bind(&form); err != nil {
		return h.redirectWithFlash(c, "/assignments", fmt.Errorf("%w: %s", errs.BadRequest, err.Error()), "")
	}
	if form.PatientId == "" || len(form.MemberIds) == 0 {
		setFlash(c, FlashError, "Please choose a patient and at least one team member")
		return c.Redirect(http.StatusSeeOther, "/assignments")
	}

	members, err := h.membersById(ctx, form.MemberIds...)
	if err != nil {
		return h.redirectWithFlash(c, "/assignments", err, "")
	}
	if form.AssignedDate == "" {
		form.AssignedDate = h.now().Format(schedules.DateLayout)
	}

	created, err := h.assignments.AssignAll(ctx, assignments.Bulk{
		PatientId:    form.PatientId,
		PatientName:  h.patientName(ctx, form.PatientId),
		Members:      members,
		AssignedDate: form.AssignedDate,
	})
	return h.redirectWithFlash(c, "/assignments", err, fmt.Sprintf("Created %d assignments", len(created)))
}
