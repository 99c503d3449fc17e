package api

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/pallium-care/console/assignments"
	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/backend"
	"github.com/pallium-care/console/config"
	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/statistics"
	"github.com/pallium-care/console/tasks"
	"github.com/pallium-care/console/vcm"
)

type Handler struct {
	config        *config.Config
	client        *backend.Client
	authenticator auth.Authenticator
	patients      patients.Service
	inNeed        patients.InNeedService
	vcm           vcm.Service
	equipment     equipment.Service
	schedules     schedules.Service
	tasks         tasks.Service
	assignments   assignments.Service
	donations     donations.Service
	statistics    statistics.Service
	logger        *zap.SugaredLogger
	now           func() time.Time
}

type Params struct {
	fx.In

	Config        *config.Config
	Client        *backend.Client
	Authenticator auth.Authenticator
	Patients      patients.Service
	InNeed        patients.InNeedService
	Vcm           vcm.Service
	Equipment     equipment.Service
	Schedules     schedules.Service
	Tasks         tasks.Service
	Assignments   assignments.Service
	Donations     donations.Service
	Statistics    statistics.Service
	Logger        *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		config:        p.Config,
		client:        p.Client,
		authenticator: p.Authenticator,
		patients:      p.Patients,
		inNeed:        p.InNeed,
		vcm:           p.Vcm,
		equipment:     p.Equipment,
		schedules:     p.Schedules,
		tasks:         p.Tasks,
		assignments:   p.Assignments,
		donations:     p.Donations,
		statistics:    p.Statistics,
		logger:        p.Logger,
		now:           time.Now,
	}
}
