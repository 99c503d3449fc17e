package statistics

import (
	"context"

	"github.com/mitchellh/mapstructure"
)

const path = "/api/statistics"

type Statistics struct {
	TotalPatients             int     `mapstructure:"total_patients"`
	TotalPatientsInNeed       int     `mapstructure:"total_patients_in_need"`
	TotalVolunteers           int     `mapstructure:"total_volunteers"`
	TotalCaregivers           int     `mapstructure:"total_caregivers"`
	TotalMedicalProfessionals int     `mapstructure:"total_medical_professionals"`
	TotalEquipment            int     `mapstructure:"total_equipment"`
	AvailableEquipment        int     `mapstructure:"available_equipment"`
	PendingTasks              int     `mapstructure:"pending_tasks"`
	EmergencyFundTotal        float64 `mapstructure:"emergency_fund_total"`
}

func (s Statistics) TeamSize() int {
	return s.TotalVolunteers + s.TotalCaregivers + s.TotalMedicalProfessionals
}

// Decode reads statistics leniently: numbers may arrive as strings and
// unknown keys are ignored.
func Decode(raw map[string]interface{}) (Statistics, error) {
	stats := Statistics{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &stats,
	})
	if err != nil {
		return stats, err
	}
	err = decoder.Decode(raw)
	return stats, err
}

type Fetcher interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type Service interface {
	Get(ctx context.Context) (*Statistics, error)
}

type service struct {
	fetcher Fetcher
}

var _ Service = &service{}

func NewService(fetcher Fetcher) Service {
	return &service{fetcher: fetcher}
}

func (s *service) Get(ctx context.Context) (*Statistics, error) {
	raw := map[string]interface{}{}
	if err := s.fetcher.GetJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	stats, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
