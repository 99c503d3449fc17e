package backend

import (
	"context"
	"io"
)

// Resource names of the backend REST collections.
const (
	Patients             = "patients"
	PatientsInNeed       = "patients-in-need"
	Volunteers           = "volunteers"
	Caregivers           = "caregivers"
	MedicalProfessionals = "medical-professionals"
	Equipment            = "equipment"
	Schedules            = "schedules"
	Tasks                = "tasks"
	Assignments          = "assignments"
	EmergencyFund        = "emergency-fund"
)

//go:generate mockgen -source=./records.go -destination=./test/mock_records.go -package test
type Records[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record T) (*T, error)
	Update(ctx context.Context, id string, record T) (*T, error)
	Patch(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Upload is a file attached to a multipart create or update.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

func (u *Upload) Empty() bool {
	return u == nil || u.Content == nil || u.Filename == ""
}

type UploadRecords[T any] interface {
	Records[T]
	CreateWithUpload(ctx context.Context, record T, upload *Upload) (*T, error)
	UpdateWithUpload(ctx context.Context, id string, record T, upload *Upload) (*T, error)
}
