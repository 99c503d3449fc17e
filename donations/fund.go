package donations

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	"github.com/pallium-care/console/config"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/paging"
	"github.com/pallium-care/console/validation"
)

const defaultNote = "Emergency fund donation"

type Entry struct {
	Id           string  `json:"id,omitempty" form:"id"`
	DonorName    string  `json:"donor_name" form:"donor_name"`
	DonorPhone   string  `json:"donor_phone,omitempty" form:"donor_phone"`
	Amount       float64 `json:"amount" form:"amount"`
	Purpose      string  `json:"purpose,omitempty" form:"purpose"`
	UpiReference string  `json:"upi_reference,omitempty" form:"upi_reference"`
	ImageUrl     string  `json:"image_url,omitempty" form:"image_url"`
	CreatedAt    string  `json:"created_at,omitempty" form:"created_at"`
}

func Validate(e Entry) validation.Errors {
	errs := validation.Errors{}
	errs.Required("donor_name", e.DonorName, "Donor name")
	errs.OptionalPhone("donor_phone", e.DonorPhone)
	if e.Amount <= 0 {
		errs.Add("amount", "Amount must be greater than zero")
	}
	return errs
}

// Total sums the amounts of entries.
func Total(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

type Service interface {
	backend.UploadRecords[Entry]
	// Recent lists the entries newest first.
	Recent(ctx context.Context) ([]Entry, error)
	// Plan builds the payment links for a donation made from a browser with userAgent.
	Plan(userAgent string, amount float64, donor string) DispatchPlan
	ParseAmount(value string) (float64, error)
	Handle() string
}

type service struct {
	backend.UploadRecords[Entry]
	config *config.Config
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(records backend.UploadRecords[Entry], cfg *config.Config, logger *zap.SugaredLogger) Service {
	return &service{
		UploadRecords: records,
		config:        cfg,
		logger:        logger,
	}
}

func NewRecords(client *backend.Client) backend.UploadRecords[Entry] {
	return backend.NewResource[Entry](client, backend.EmergencyFund)
}

func (s *service) Recent(ctx context.Context) ([]Entry, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	paging.SortBy(list, paging.Sort{Ascending: false}, func(a, b Entry) bool {
		return a.CreatedAt < b.CreatedAt
	})
	return list, nil
}

func Normalize(e Entry) Entry {
	e.DonorName = strings.TrimSpace(e.DonorName)
	e.DonorPhone = validation.CleanPhone(e.DonorPhone)
	e.Purpose = strings.TrimSpace(e.Purpose)
	e.UpiReference = strings.TrimSpace(e.UpiReference)
	return e
}

func invalid(e Entry) error {
	if v := Validate(e); v.HasErrors() {
		return fmt.Errorf("%w: donation is invalid", errs.BadRequest)
	}
	return nil
}

func (s *service) Create(ctx context.Context, e Entry) (*Entry, error) {
	return s.CreateWithUpload(ctx, e, nil)
}

func (s *service) Update(ctx context.Context, id string, e Entry) (*Entry, error) {
	return s.UpdateWithUpload(ctx, id, e, nil)
}

func (s *service) CreateWithUpload(ctx context.Context, e Entry, upload *backend.Upload) (*Entry, error) {
	e = Normalize(e)
	if err := invalid(e); err != nil {
		return nil, err
	}
	s.logger.Infow("recording donation", "amount", e.Amount)
	return s.UploadRecords.CreateWithUpload(ctx, e, upload)
}

func (s *service) UpdateWithUpload(ctx context.Context, id string, e Entry, upload *backend.Upload) (*Entry, error) {
	e = Normalize(e)
	if err := invalid(e); err != nil {
		return nil, err
	}
	return s.UploadRecords.UpdateWithUpload(ctx, id, e, upload)
}

func (s *service) Plan(userAgent string, amount float64, donor string) DispatchPlan {
	note := defaultNote
	if donor = strings.TrimSpace(donor); donor != "" {
		note = defaultNote + " from " + donor
	}
	platform := DetectPlatform(userAgent)
	s.logger.Debugw("planning upi dispatch", "platform", platform, "amount", amount)
	return PlanDispatch(platform, Payment{
		Handle: s.config.UpiHandle,
		Payee:  s.config.UpiPayeeName,
		Amount: amount,
		Note:   note,
	})
}

func (s *service) ParseAmount(value string) (float64, error) {
	return ParseAmount(value, s.config.DonationMaxAmount)
}

func (s *service) Handle() string {
	return s.config.UpiHandle
}
