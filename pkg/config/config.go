// Package config assembles runtime configuration from a .env file,
// environment variables, an optional config file and command-line flags,
// in increasing order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Defaults for the live upstream. The token endpoint shares the API
// host.
const (
	DefaultAPIBaseURL     = "https://api.ramp.com/developer/v1"
	DefaultTokenURL       = DefaultAPIBaseURL + "/token"
	DefaultPort           = "3000"
	DefaultRequestTimeout = 30 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	Credentials Credentials

	APIBaseURL     string
	TokenURL       string
	Port           string
	RequestTimeout time.Duration

	// FixturePath optionally overrides the embedded mock dataset.
	FixturePath string
}

// Build loads configuration. A .env file in the working directory is
// applied first (missing file is fine), then environment variables with
// the RAMPBOARD_ prefix, then the optional config file, then any bound
// flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RAMPBOARD")
	v.AutomaticEnv()

	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("token_url", DefaultTokenURL)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("request_timeout", DefaultRequestTimeout.String())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// Only a missing default config file is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid request_timeout: %w", err)
	}

	return &Config{
		Credentials: Credentials{
			ClientID:     v.GetString("client_id"),
			ClientSecret: v.GetString("client_secret"),
		},
		APIBaseURL:     v.GetString("api_base_url"),
		TokenURL:       v.GetString("token_url"),
		Port:           v.GetString("port"),
		RequestTimeout: timeout,
		FixturePath:    v.GetString("fixture_path"),
	}, nil
}
