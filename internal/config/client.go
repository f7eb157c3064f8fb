package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultClientBaseURL  = "http://localhost:8080"
	DefaultClientTimeout  = 15 * time.Second
	DefaultClientLogLevel = "info"
)

// ClientConfig configures the countries API command-line client.
type ClientConfig struct {
	// Adapter holds the remote API address and request timeout.
	Adapter ClientAdapter

	// LogLevel is the minimal zerolog level of the client logger.
	// Env: COUNTRIES_LOG_LEVEL
	LogLevel string `env:"COUNTRIES_LOG_LEVEL" validate:"required,oneof=trace debug info warn error"`
}

// ClientAdapter holds the settings of the HTTP adapter talking to the API.
type ClientAdapter struct {
	// BaseURL is the scheme and host of the API, e.g. "http://localhost:8080".
	// Env: COUNTRIES_API_URL
	BaseURL string `env:"COUNTRIES_API_URL" validate:"required,url"`

	// RequestTimeout bounds every API call.
	// Env: COUNTRIES_API_TIMEOUT
	RequestTimeout time.Duration `env:"COUNTRIES_API_TIMEOUT" validate:"gt=0"`
}

// GetClientConfig builds the client configuration from the environment,
// the flags in args and the defaults, in that order of priority. It returns
// the positional arguments left after flag parsing.
//
// Flags:
//
//	-base-url API base URL
//	-timeout request timeout (e.g., "5s")
//	-log-level log level (trace, debug, info, warn, error)
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("countries", flag.ContinueOnError)
	flagCfg := &ClientConfig{}
	fs.StringVar(&flagCfg.Adapter.BaseURL, "base-url", "", "API base URL")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, defaultClientConfig()} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, fs.Args(), nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        DefaultClientBaseURL,
			RequestTimeout: DefaultClientTimeout,
		},
		LogLevel: DefaultClientLogLevel,
	}
}
