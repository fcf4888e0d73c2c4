package config

import (
	"time"

	"github.com/s0up4200/telnyx-go/telnyx"
)

// Config represents the complete configuration structure
type Config struct {
	Telnyx  TelnyxConfig  `mapstructure:"telnyx"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TelnyxConfig holds Telnyx API connection details
type TelnyxConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ClientOptions converts the connection details into telnyx client options.
// The API key itself is passed to telnyx.New directly.
func (c TelnyxConfig) ClientOptions() []telnyx.Option {
	var opts []telnyx.Option
	if c.BaseURL != "" {
		opts = append(opts, telnyx.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, telnyx.WithTimeout(c.Timeout))
	}
	return opts
}
