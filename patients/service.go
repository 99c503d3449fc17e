package patients

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
)

type Service interface {
	backend.Records[Patient]
	Search(ctx context.Context, query string) ([]Patient, error)
}

type service struct {
	backend.Records[Patient]
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.Records[Patient], logger *zap.SugaredLogger) Service {
	return &service{
		Records: records,
		logger:  logger,
	}
}

func NewRecords(client *backend.Client) backend.Records[Patient] {
	return backend.NewResource[Patient](client, backend.Patients)
}

func (s *service) Search(ctx context.Context, query string) ([]Patient, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(list, query), nil
}

func (s *service) Create(ctx context.Context, patient Patient) (*Patient, error) {
	patient = Normalize(patient)
	if e := Validate(patient); e.HasErrors() {
		return nil, fmt.Errorf("%w: patient is invalid", errs.BadRequest)
	}
	return s.Records.Create(ctx, patient)
}

func (s *service) Update(ctx context.Context, id string, patient Patient) (*Patient, error) {
	patient = Normalize(patient)
	if e := Validate(patient); e.HasErrors() {
		return nil, fmt.Errorf("%w: patient is invalid", errs.BadRequest)
	}
	s.logger.Debugw("updating patient", "id", id, "supportType", patient.SupportType)
	return s.Records.Update(ctx, id, patient)
}
