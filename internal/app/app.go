package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vk/autoreg/internal/config"
	"github.com/vk/autoreg/internal/ctxlog"
	"github.com/vk/autoreg/internal/engine"
	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/manifest"
	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/registry"
	"github.com/vk/autoreg/internal/telemetry"
)

const tracerName = "github.com/vk/autoreg"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	appCfg   *Config
	config   *config.Model
	engine   *engine.Engine
	tracer   trace.Tracer
	modules  map[string]registry.Module
	content  map[string]*registry.Registry[any]
	metrics  *telemetry.Metrics
	gatherer *prometheus.Registry
	recorder *manifest.Recorder
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, engine and content
// registries. The manifest goes to outW and logs go to logW. Configuration
// that names an unknown registrar is rejected here, before any scan runs.
func NewApp(outW, logW io.Writer, appCfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(appCfg.LogLevel, appCfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, err := loader.Load(ctx, appCfg.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if appCfg.Namespace != "" {
		cfgModel.OverrideNamespace(appCfg.Namespace)
		logger.Debug("Namespace overridden for all blocks.", "namespace", appCfg.Namespace)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "blocks", len(cfgModel.Blocks))

	if len(modules) == 0 {
		modules = coreModules
	}
	instances := meta.NewInstances()
	byName := make(map[string]registry.Module, len(modules))
	content := make(map[string]*registry.Registry[any], len(modules))
	for _, mod := range modules {
		name := mod.Name()
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("module '%s' is declared more than once", name)
		}
		if err := mod.Bind(instances); err != nil {
			return nil, fmt.Errorf("failed to bind module '%s': %w", name, err)
		}
		byName[name] = mod
		content[name] = registry.New[any]()
	}
	logger.Debug("All Go modules bound.", "count", len(modules))

	for _, b := range cfgModel.Blocks {
		for _, name := range b.Registrars {
			if _, ok := byName[name]; !ok {
				return nil, fmt.Errorf("%s: registration block '%s' names unknown registrar '%s'", b.Source, b.Namespace, name)
			}
		}
	}
	logger.Debug("Configuration validation passed.")

	gatherer := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(gatherer)
	recorder := &manifest.Recorder{}

	bus := hooks.NewBus()
	bus.Subscribe(metrics)
	bus.Subscribe(telemetry.Tracing{})
	bus.OnMember(recorder.MemberRegistered)

	tp := appCfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	eng, err := engine.New(meta.NewReflect(instances), engine.WithHooks(bus), engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		appCfg:   appCfg,
		config:   cfgModel,
		engine:   eng,
		tracer:   tp.Tracer(tracerName),
		modules:  byName,
		content:  content,
		metrics:  metrics,
		gatherer: gatherer,
		recorder: recorder,
	}, nil
}

// Content returns the registry holding the named module's registered values.
func (a *App) Content(name string) (*registry.Registry[any], bool) {
	r, ok := a.content[name]
	return r, ok
}

// Metrics returns the app's scan counters. This is primarily for testing.
func (a *App) Metrics() *telemetry.Metrics {
	return a.metrics
}

// Entries returns the manifest entries recorded so far.
func (a *App) Entries() []manifest.Entry {
	return a.recorder.Entries()
}
