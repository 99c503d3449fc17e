package tasks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/validation"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var (
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	Statuses   = []string{StatusPending, StatusInProgress, StatusCompleted}

	priorityRank = map[string]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
)

type Task struct {
	Id          string `json:"id,omitempty" form:"id"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description,omitempty" form:"description"`
	Category    string `json:"category,omitempty" form:"category"`
	Priority    string `json:"priority" form:"priority"`
	Status      string `json:"status" form:"status"`
	AssignedTo  string `json:"assigned_to,omitempty" form:"assigned_to"`
	DueDate     string `json:"due_date,omitempty" form:"due_date"`
	DueTime     string `json:"due_time,omitempty" form:"due_time"`
}

func (t Task) Overdue(now time.Time) bool {
	if t.Status == StatusCompleted || t.DueDate == "" {
		return false
	}
	due, err := schedules.ParseDate(t.DueDate, now.Location())
	if err != nil {
		return false
	}
	offset, err := schedules.ParseTime(t.DueTime)
	if err != nil || t.DueTime == "" {
		offset = 24*time.Hour - time.Nanosecond
	}
	return now.After(due.Add(offset))
}

func Validate(t Task) validation.Errors {
	errs := validation.Errors{}
	errs.Required("title", t.Title, "Title")
	errs.OneOf("priority", t.Priority, Priorities...)
	errs.OneOf("status", t.Status, Statuses...)
	if t.DueDate != "" {
		if _, err := schedules.ParseDate(t.DueDate, time.Local); err != nil {
			errs.Add("due_date", "Due date must be a valid date")
		}
	}
	if _, err := schedules.ParseTime(t.DueTime); err != nil {
		errs.Add("due_time", "Due time must look like 14:30 or 2:30 PM")
	}
	return errs
}

func Normalize(t Task) Task {
	t.Title = strings.TrimSpace(t.Title)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return t
}

// Sort orders tasks by due date, undated last, and then by priority.
func Sort(list []Task) {
	due := func(t Task) (time.Time, bool) {
		d, err := schedules.ParseDate(t.DueDate, time.UTC)
		return d, err == nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		di, oki := due(list[i])
		dj, okj := due(list[j])
		if oki != okj {
			return oki
		}
		if oki && !di.Equal(dj) {
			return di.Before(dj)
		}
		return rank(list[i].Priority) < rank(list[j].Priority)
	})
}

func rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}

type Service interface {
	backend.Records[Task]
	// Ordered lists tasks by due date and priority.
	Ordered(ctx context.Context) ([]Task, error)
	SetStatus(ctx context.Context, id, status string) (*Task, error)
}

type service struct {
	backend.Records[Task]
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.Records[Task], logger *zap.SugaredLogger) Service {
	return &service{
		Records: records,
		logger:  logger,
	}
}

func NewRecords(client *backend.Client) backend.Records[Task] {
	return backend.NewResource[Task](client, backend.Tasks)
}

func (s *service) Ordered(ctx context.Context) ([]Task, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	Sort(list)
	return list, nil
}

func (s *service) Create(ctx context.Context, t Task) (*Task, error) {
	t = Normalize(t)
	if v := Validate(t); v.HasErrors() {
		return nil, fmt.Errorf("%w: task is invalid", errs.BadRequest)
	}
	return s.Records.Create(ctx, t)
}

func (s *service) Update(ctx context.Context, id string, t Task) (*Task, error) {
	t = Normalize(t)
	if v := Validate(t); v.HasErrors() {
		return nil, fmt.Errorf("%w: task is invalid", errs.BadRequest)
	}
	return s.Records.Update(ctx, id, t)
}

func (s *service) SetStatus(ctx context.Context, id, status string) (*Task, error) {
	v := validation.Errors{}
	if v.OneOf("status", status, Statuses...); v.HasErrors() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.BadRequest, status)
	}
	s.logger.Infow("changing task status", "id", id, "status", status)
	return s.Patch(ctx, id, map[string]any{"status": status})
}
