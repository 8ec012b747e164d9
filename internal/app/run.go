package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vk/autoreg/internal/config"
	"github.com/vk/autoreg/internal/ctxlog"
	"github.com/vk/autoreg/internal/engine"
	"github.com/vk/autoreg/internal/manifest"
	"github.com/vk/autoreg/internal/telemetry"
)

// Run scans every configured block, freezes the content registries and
// writes the manifest. The first failing scan stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.config.Blocks) == 0 {
		a.logger.Warn("No registration blocks found in configuration, nothing to register.")
	}
	for _, b := range a.config.Blocks {
		if err := a.runBlock(ctx, b); err != nil {
			return err
		}
	}

	for name, r := range a.content {
		r.Freeze()
		a.logger.Debug("Content registry frozen.", "module", name, "count", r.Len())
	}
	a.logger.Info("Registration finished.", "registered", len(a.recorder.Entries()))

	if err := writeTo(a.appCfg.OutputPath, a.outW, func(w io.Writer) error {
		return manifest.Write(w, a.recorder.Entries())
	}); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if a.appCfg.MetricsPath != "" {
		if err := writeTo(a.appCfg.MetricsPath, nil, func(w io.Writer) error {
			return telemetry.WriteText(w, a.gatherer)
		}); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		a.logger.Debug("Metrics written.", "path", a.appCfg.MetricsPath)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runBlock(ctx context.Context, b *config.Block) error {
	ctx, span := a.tracer.Start(ctx, "autoreg.block", trace.WithAttributes(
		attribute.String("autoreg.namespace", b.Namespace),
		attribute.String("autoreg.mode", b.Mode.String()),
	))
	defer span.End()

	mode := b.Mode
	return a.engine.Configure(engine.Options{Mode: &mode, Namespace: b.Namespace}, func(blk *engine.Block) error {
		for _, name := range b.Registrars {
			mod := a.modules[name]
			if _, err := engine.ScanIntoRegistry[any](ctx, blk, mod.Registrar(), a.content[name]); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "registrar scan failed")
				return fmt.Errorf("registration block '%s' failed on registrar '%s': %w", b.Namespace, name, err)
			}
		}
		return nil
	})
}

// writeTo runs write against the file at path, or against fallback when path
// is empty. The file's Close error is reported when write succeeds.
func writeTo(path string, fallback io.Writer, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
