package equipment

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/location"
	"github.com/pallium-care/console/validation"
)

const (
	StatusAvailable   = "available"
	StatusInUse       = "in-use"
	StatusMaintenance = "maintenance"
)

var Statuses = []string{StatusAvailable, StatusInUse, StatusMaintenance}

type Equipment struct {
	Id         string `json:"id,omitempty" form:"id"`
	Name       string `json:"name" form:"name"`
	Type       string `json:"type" form:"type"`
	Quantity   int    `json:"quantity" form:"quantity"`
	Status     string `json:"status" form:"status"`
	Place      string `json:"place,omitempty" form:"place"`
	DonorName  string `json:"donor_name,omitempty" form:"donor_name"`
	DonorPhone string `json:"donor_phone,omitempty" form:"donor_phone"`
	ImageUrl   string `json:"image_url,omitempty" form:"image_url"`
}

func (e Equipment) Location() location.Place {
	return location.ParsePlace(e.Place)
}

func Validate(e Equipment) validation.Errors {
	errs := validation.Errors{}
	errs.Required("name", e.Name, "Name")
	errs.Required("type", e.Type, "Type")
	if e.Quantity < 0 {
		errs.Add("quantity", "Quantity cannot be negative")
	}
	errs.OneOf("status", e.Status, Statuses...)
	errs.OptionalPhone("donor_phone", e.DonorPhone)
	return errs
}

func Normalize(e Equipment) Equipment {
	e.Name = strings.TrimSpace(e.Name)
	e.Type = strings.TrimSpace(e.Type)
	e.DonorName = strings.TrimSpace(e.DonorName)
	e.DonorPhone = validation.CleanPhone(e.DonorPhone)
	if e.Status == "" {
		e.Status = StatusAvailable
	}
	return e
}

// Available counts the units that can be lent out.
func Available(list []Equipment) int {
	total := 0
	for _, e := range list {
		if e.Status == StatusAvailable {
			total += e.Quantity
		}
	}
	return total
}

type Service interface {
	backend.UploadRecords[Equipment]
	SetStatus(ctx context.Context, id, status string) (*Equipment, error)
}

type service struct {
	backend.UploadRecords[Equipment]
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.UploadRecords[Equipment], logger *zap.SugaredLogger) Service {
	return &service{
		UploadRecords: records,
		logger:        logger,
	}
}

func NewRecords(client *backend.Client) backend.UploadRecords[Equipment] {
	return backend.NewResource[Equipment](client, backend.Equipment)
}

func invalid(e Equipment) error {
	if v := Validate(e); v.HasErrors() {
		return fmt.Errorf("%w: equipment is invalid", errs.BadRequest)
	}
	return nil
}

func (s *service) Create(ctx context.Context, e Equipment) (*Equipment, error) {
	return s.CreateWithUpload(ctx, e, nil)
}

func (s *service) Update(ctx context.Context, id string, e Equipment) (*Equipment, error) {
	return s.UpdateWithUpload(ctx, id, e, nil)
}

func (s *service) CreateWithUpload(ctx context.Context, e Equipment, upload *backend.Upload) (*Equipment, error) {
	e = Normalize(e)
	if err := invalid(e); err != nil {
		return nil, err
	}
	return s.UploadRecords.CreateWithUpload(ctx, e, upload)
}

func (s *service) UpdateWithUpload(ctx context.Context, id string, e Equipment, upload *backend.Upload) (*Equipment, error) {
	e = Normalize(e)
	if err := invalid(e); err != nil {
		return nil, err
	}
	return s.UploadRecords.UpdateWithUpload(ctx, id, e, upload)
}

func (s *service) SetStatus(ctx context.Context, id, status string) (*Equipment, error) {
	v := validation.Errors{}
	if v.OneOf("status", status, Statuses...); v.HasErrors() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.BadRequest, status)
	}
	s.logger.Infow("changing equipment status", "id", id, "status", status)
	return s.Patch(ctx, id, map[string]any{"status": status})
}
