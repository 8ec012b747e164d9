package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from the process environment.
type Env struct {
	LogLevel  string `env:"AUTOREG_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"AUTOREG_LOG_FORMAT" envDefault:"text"`
	// Namespace, when set, overrides the namespace of every loaded block.
	Namespace string `env:"AUTOREG_NAMESPACE"`
	Config    string `env:"AUTOREG_CONFIG"`
	// OTelEndpoint enables span export over OTLP/HTTP.
	OTelEndpoint string `env:"AUTOREG_OTEL_ENDPOINT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
