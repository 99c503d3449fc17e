package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort          uint16  `envconfig:"CONSOLE_HTTP_PORT" default:"8080" required:"true"`
	SecureCookies     bool    `envconfig:"CONSOLE_SECURE_COOKIES" default:"false"`
	UpiHandle         string  `envconfig:"CONSOLE_UPI_HANDLE" default:"palliativecare@upi"`
	UpiPayeeName      string  `envconfig:"CONSOLE_UPI_PAYEE_NAME" default:"Palliative Care Emergency Fund"`
	DonationMaxAmount float64 `envconfig:"CONSOLE_DONATION_MAX_AMOUNT" default:"100000"`
	PageSize          int     `envconfig:"CONSOLE_PAGE_SIZE" default:"25"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.UpiHandle == "" {
		return fmt.Errorf("CONSOLE_UPI_HANDLE is required")
	}
	if c.DonationMaxAmount <= 0 {
		return fmt.Errorf("CONSOLE_DONATION_MAX_AMOUNT must be positive, got %v", c.DonationMaxAmount)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("CONSOLE_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	return nil
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.HttpPort)
}
