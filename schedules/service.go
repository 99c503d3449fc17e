package schedules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
)

type Service interface {
	backend.Records[Schedule]
	// Upcoming lists the schedules in the mode's window, sorted by visit.
	Upcoming(ctx context.Context, mode Mode, now time.Time) ([]Schedule, error)
}

type service struct {
	backend.Records[Schedule]
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.Records[Schedule], logger *zap.SugaredLogger) Service {
	return &service{
		Records: records,
		logger:  logger,
	}
}

func NewRecords(client *backend.Client) backend.Records[Schedule] {
	return backend.NewResource[Schedule](client, backend.Schedules)
}

func (s *service) Upcoming(ctx context.Context, mode Mode, now time.Time) ([]Schedule, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered, err := Filter(list, mode, now)
	if err != nil {
		s.logger.Debugw("unable to filter schedules", "mode", mode, zap.Error(err))
	}
	return filtered, nil
}

func (s *service) Create(ctx context.Context, schedule Schedule) (*Schedule, error) {
	if err := validate(schedule); err != nil {
		return nil, err
	}
	return s.Records.Create(ctx, normalize(schedule))
}

func (s *service) Update(ctx context.Context, id string, schedule Schedule) (*Schedule, error) {
	if err := validate(schedule); err != nil {
		return nil, err
	}
	return s.Records.Update(ctx, id, normalize(schedule))
}

func validate(schedule Schedule) error {
	if e := Validate(schedule); e.HasErrors() {
		return fmt.Errorf("%w: schedule is invalid", errs.BadRequest)
	}
	return nil
}

func normalize(schedule Schedule) Schedule {
	schedule.VisitDate = strings.TrimSpace(schedule.VisitDate)
	schedule.VisitTime = strings.TrimSpace(schedule.VisitTime)
	schedule.Notes = strings.TrimSpace(schedule.Notes)
	return schedule
}
