package app

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string

	// Namespace, when set, overrides the namespace of every loaded block.
	Namespace string
	// OutputPath receives the manifest. Empty means the app's writer.
	OutputPath string
	// MetricsPath, when set, receives the scan counters in the Prometheus
	// text format after the run.
	MetricsPath string

	// OTelEndpoint is the OTLP/HTTP endpoint spans are exported to. Empty
	// disables export.
	OTelEndpoint string
	// TracerProvider overrides the global tracer provider.
	TracerProvider trace.TracerProvider

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return &cfg, nil
}
