package backend

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseUrl string        `envconfig:"CONSOLE_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CONSOLE_API_TIMEOUT" default:"15s"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	err := envconfig.Process("", cfg)
	return cfg, err
}
