package patients

import (
	"context"
	"fmt"
	"strings"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/location"
	"github.com/pallium-care/console/notes"
	"github.com/pallium-care/console/validation"
)

// InNeed is a referral for someone who is not yet registered as a patient.
type InNeed struct {
	Id              string `json:"id,omitempty" form:"id"`
	PatientName     string `json:"patient_name" form:"patient_name"`
	ContactName     string `json:"contact_name,omitempty" form:"contact_name"`
	ContactPhone    string `json:"contact_phone" form:"contact_phone"`
	Place           string `json:"place,omitempty" form:"place"`
	HealthCondition string `json:"health_condition,omitempty" form:"health_condition"`
	CareDetails     string `json:"care_details,omitempty" form:"care_details"`
	Notes           string `json:"notes,omitempty" form:"notes"`
	CreatedAt       string `json:"created_at,omitempty" form:"created_at"`
}

func (p InNeed) NoteLines() []notes.Line {
	return notes.ParseLines(p.Notes)
}

func (p InNeed) Location() location.Place {
	return location.ParsePlace(p.Place)
}

func ValidateInNeed(p InNeed) validation.Errors {
	errs := validation.Errors{}
	errs.Required("patient_name", p.PatientName, "Patient name")
	errs.Phone("contact_phone", p.ContactPhone)
	return errs
}

type InNeedService interface {
	backend.Records[InNeed]
}

type inNeedService struct {
	backend.Records[InNeed]
}

var _ InNeedService = &inNeedService{}

func NewInNeedService(records backend.Records[InNeed]) InNeedService {
	return &inNeedService{Records: records}
}

func NewInNeedRecords(client *backend.Client) backend.Records[InNeed] {
	return backend.NewResource[InNeed](client, backend.PatientsInNeed)
}

func normalizeInNeed(p InNeed) InNeed {
	p.PatientName = strings.TrimSpace(p.PatientName)
	p.ContactPhone = validation.CleanPhone(p.ContactPhone)
	p.Notes = notes.Format(notes.ParseLines(p.Notes))
	return p
}

func (s *inNeedService) Create(ctx context.Context, p InNeed) (*InNeed, error) {
	p = normalizeInNeed(p)
	if e := ValidateInNeed(p); e.HasErrors() {
		return nil, fmt.Errorf("%w: referral is invalid", errs.BadRequest)
	}
	return s.Records.Create(ctx, p)
}

func (s *inNeedService) Update(ctx context.Context, id string, p InNeed) (*InNeed, error) {
	p = normalizeInNeed(p)
	if e := ValidateInNeed(p); e.HasErrors() {
		return nil, fmt.Errorf("%w: referral is invalid", errs.BadRequest)
	}
	return s.Records.Update(ctx, id, p)
}
