package assignments

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/validation"
	"github.com/pallium-care/console/vcm"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type Assignment struct {
	Id           string `json:"id,omitempty" form:"id"`
	PatientId    string `json:"patient_id" form:"patient_id"`
	PatientName  string `json:"patient_name,omitempty" form:"patient_name"`
	MemberId     string `json:"member_id" form:"member_id"`
	MemberName   string `json:"member_name,omitempty" form:"member_name"`
	MemberType   string `json:"member_type" form:"member_type"`
	AssignedDate string `json:"assigned_date,omitempty" form:"assigned_date"`
	Status       string `json:"status,omitempty" form:"status"`
}

// Bulk assigns one patient to several team members.
type Bulk struct {
	PatientId    string
	PatientName  string
	Members      []vcm.Member
	AssignedDate string
}

func Validate(a Assignment) validation.Errors {
	errs := validation.Errors{}
	errs.Required("patient_id", a.PatientId, "Patient")
	errs.Required("member_id", a.MemberId, "Team member")
	errs.OneOf("member_type", a.MemberType, string(vcm.RoleVolunteer), string(vcm.RoleCaregiver), string(vcm.RoleMedical))
	return errs
}

// Expand returns one assignment per distinct member, in the order the members
// were first picked.
func (b Bulk) Expand() []Assignment {
	seen := mapset.NewThreadUnsafeSet[string]()
	result := make([]Assignment, 0, len(b.Members))
	for _, m := range b.Members {
		if m.Id == "" || !seen.Add(m.Id) {
			continue
		}
		result = append(result, Assignment{
			PatientId:    b.PatientId,
			PatientName:  b.PatientName,
			MemberId:     m.Id,
			MemberName:   m.Name,
			MemberType:   string(m.Role),
			AssignedDate: b.AssignedDate,
			Status:       StatusActive,
		})
	}
	return result
}

type Service interface {
	backend.Records[Assignment]
	AssignAll(ctx context.Context, bulk Bulk) ([]Assignment, error)
	// ForPatient lists the assignments of one patient.
	ForPatient(ctx context.Context, patientId string) ([]Assignment, error)
}

type service struct {
	backend.Records[Assignment]
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.Records[Assignment], logger *zap.SugaredLogger) Service {
	return &service{
		Records: records,
		logger:  logger,
	}
}

func NewRecords(client *backend.Client) backend.Records[Assignment] {
	return backend.NewResource[Assignment](client, backend.Assignments)
}

func (s *service) Create(ctx context.Context, a Assignment) (*Assignment, error) {
	if a.Status == "" {
		a.Status = StatusActive
	}
	if v := Validate(a); v.HasErrors() {
		return nil, fmt.Errorf("%w: assignment is invalid", errs.BadRequest)
	}
	return s.Records.Create(ctx, a)
}

// AssignAll creates the assignments one by one and stops at the first
// failure, returning the ones created so far.
func (s *service) AssignAll(ctx context.Context, bulk Bulk) ([]Assignment, error) {
	expanded := bulk.Expand()
	if len(expanded) == 0 {
		return nil, fmt.Errorf("%w: no team members selected", errs.BadRequest)
	}

	created := make([]Assignment, 0, len(expanded))
	for _, a := range expanded {
		result, err := s.Create(ctx, a)
		if err != nil {
			s.logger.Warnw("unable to create assignment", "patientId", a.PatientId, "memberId", a.MemberId, zap.Error(err))
			return created, err
		}
		created = append(created, *result)
	}
	return created, nil
}

func (s *service) ForPatient(ctx context.Context, patientId string) ([]Assignment, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Assignment, 0)
	for _, a := range list {
		if a.PatientId == patientId {
			result = append(result, a)
		}
	}
	return result, nil
}
