package vcm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/validation"
)

// registry validates and normalizes records before they reach the backend.
type registry[T any] struct {
	backend.Records[T]
	validate  func(T) validation.Errors
	normalize func(T) T
	kind      string
}

func (r *registry[T]) Create(ctx context.Context, record T) (*T, error) {
	record = r.normalize(record)
	if e := r.validate(record); e.HasErrors() {
		return nil, fmt.Errorf("%w: %s is invalid", errs.BadRequest, r.kind)
	}
	return r.Records.Create(ctx, record)
}

func (r *registry[T]) Update(ctx context.Context, id string, record T) (*T, error) {
	record = r.normalize(record)
	if e := r.validate(record); e.HasErrors() {
		return nil, fmt.Errorf("%w: %s is invalid", errs.BadRequest, r.kind)
	}
	return r.Records.Update(ctx, id, record)
}

type Service interface {
	Volunteers() backend.Records[Volunteer]
	Caregivers() backend.Records[Caregiver]
	MedicalProfessionals() backend.Records[MedicalProfessional]
	// Members lists everyone who can be assigned to a patient or visit.
	Members(ctx context.Context) ([]Member, error)
	Register(ctx context.Context, registration Registration) (Member, error)
}

type service struct {
	volunteers           *registry[Volunteer]
	caregivers           *registry[Caregiver]
	medicalProfessionals *registry[MedicalProfessional]
	logger               *zap.SugaredLogger
}

var _ Service = &service{}

type Records struct {
	Volunteers           backend.Records[Volunteer]
	Caregivers           backend.Records[Caregiver]
	MedicalProfessionals backend.Records[MedicalProfessional]
}

func NewRecords(client *backend.Client) Records {
	return Records{
		Volunteers:           backend.NewResource[Volunteer](client, backend.Volunteers),
		Caregivers:           backend.NewResource[Caregiver](client, backend.Caregivers),
		MedicalProfessionals: backend.NewResource[MedicalProfessional](client, backend.MedicalProfessionals),
	}
}

func NewService(records Records, logger *zap.SugaredLogger) Service {
	return &service{
		volunteers: &registry[Volunteer]{
			Records:   records.Volunteers,
			validate:  ValidateVolunteer,
			normalize: normalizeVolunteer,
			kind:      "volunteer",
		},
		caregivers: &registry[Caregiver]{
			Records:   records.Caregivers,
			validate:  ValidateCaregiver,
			normalize: normalizeCaregiver,
			kind:      "caregiver",
		},
		medicalProfessionals: &registry[MedicalProfessional]{
			Records:   records.MedicalProfessionals,
			validate:  ValidateMedicalProfessional,
			normalize: normalizeMedicalProfessional,
			kind:      "medical professional",
		},
		logger: logger,
	}
}

func (s *service) Volunteers() backend.Records[Volunteer] {
	return s.volunteers
}

func (s *service) Caregivers() backend.Records[Caregiver] {
	return s.caregivers
}

func (s *service) MedicalProfessionals() backend.Records[MedicalProfessional] {
	return s.medicalProfessionals
}

func (s *service) Members(ctx context.Context) ([]Member, error) {
	members := make([]Member, 0)

	volunteers, err := s.volunteers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range volunteers {
		members = append(members, v.Member())
	}

	caregivers, err := s.caregivers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range caregivers {
		members = append(members, c.Member())
	}

	professionals, err := s.medicalProfessionals.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range professionals {
		members = append(members, m.Member())
	}

	return members, nil
}
