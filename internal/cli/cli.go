package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/autoreg/internal/app"
	"github.com/vk/autoreg/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags default to the AUTOREG_* environment variables.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	envCfg, err := config.LoadEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("autoreg", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
autoreg - Declarative startup registration of compiled-in content.

Usage:
  autoreg [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", envCfg.Config, "Path to the registration file or directory.")
	cFlag := flagSet.String("c", "", "Path to the registration file or directory (shorthand).")
	namespaceFlag := flagSet.String("namespace", envCfg.Namespace, "Override the namespace of every registration block.")
	outputFlag := flagSet.String("output", "", "Write the registration manifest to this file instead of stdout.")
	metricsFlag := flagSet.String("metrics", "", "Write the registration counters in Prometheus text format to this file.")
	otelFlag := flagSet.String("otel-endpoint", envCfg.OTelEndpoint, "OTLP/HTTP endpoint receiving registration spans. Empty disables export.")
	logFormatFlag := flagSet.String("log-format", envCfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envCfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	switch {
	case *cFlag != "":
		paths = append(paths, *cFlag)
	case *configFlag != "":
		paths = append(paths, *configFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Configuration paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No configuration path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg, err := app.NewConfig(app.Config{
		ConfigPaths:  paths,
		Namespace:    *namespaceFlag,
		OutputPath:   *outputFlag,
		MetricsPath:  *metricsFlag,
		OTelEndpoint: *otelFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
