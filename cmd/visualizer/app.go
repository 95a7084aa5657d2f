package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/emit"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/config"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/logging"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/store"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/telemetry"
)

const tracerName = "graph-visualizer"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	archive    string
	metricsOut string
	tracing    bool
}

// app owns everything a command needs: configuration, logger, telemetry
// and the run archive. setup builds it once per invocation and close
// releases it.
type app struct {
	stdout io.Writer
	stderr io.Writer
	flags  globalFlags

	cfg       config.Config
	logger    *slog.Logger
	registry  *registry.Registry
	metrics   *prometheus.Registry
	collector *telemetry.PrometheusCollector
	emitter   emit.Emitter
	tp        *sdktrace.TracerProvider
	archive   store.Archive
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		registry: registry.Default(),
		logger:   logging.Discard(),
	}
}

// setup loads configuration, applies flag overrides and wires logging,
// metrics, tracing and the archive.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.Log.Format = a.flags.logFormat
	}
	if a.flags.archive != "" {
		cfg.Archive.Path = a.flags.archive
	}
	if a.flags.tracing {
		cfg.Telemetry.Tracing = true
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: a.stderr})
	a.metrics = prometheus.NewRegistry()
	a.collector = telemetry.NewPrometheusCollector(a.metrics, cfg.Telemetry.Namespace)

	emitters := []emit.Emitter{emit.NewLogEmitter(a.logger, slog.LevelDebug)}
	if cfg.Telemetry.Tracing {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(a.stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("setup: trace exporter: %w", err)
		}
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		otel.SetTracerProvider(a.tp)
		emitters = append(emitters, emit.NewOTelEmitter(a.tp.Tracer(tracerName)))
	}
	a.emitter = emit.Multi(emitters...)

	if cfg.Archive.Path != "" {
		arc, err := store.OpenSQLite(ctx, cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		a.archive = arc
	} else {
		a.archive = store.NewMemoryArchive()
	}

	a.logger.Debug("visualizer ready",
		"archive", cfg.Archive.Path,
		"tracing", cfg.Telemetry.Tracing,
		"algorithms", a.registry.Len())

	return nil
}

// recorder returns a Recorder wired to the app's telemetry.
func (a *app) recorder() *recorder.Recorder {
	return recorder.New(
		recorder.WithRegistry(a.registry),
		recorder.WithLogger(a.logger),
		recorder.WithEmitter(a.emitter),
		recorder.WithCollector(a.collector),
		recorder.WithStepLimit(a.cfg.Playback.StepLimit),
	)
}

// close flushes metrics and traces and closes the archive. It is safe to
// call when setup never ran or failed half way.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.metrics != nil && a.flags.metricsOut != "" {
		errs = append(errs, a.writeMetrics())
	}
	if a.tp != nil {
		errs = append(errs, a.tp.Shutdown(ctx))
		a.tp = nil
	}
	if a.archive != nil {
		errs = append(errs, a.archive.Close())
		a.archive = nil
	}

	return errors.Join(errs...)
}

// writeMetrics dumps the run metrics to the --metrics-out file, or to
// stderr for "-".
func (a *app) writeMetrics() error {
	if a.flags.metricsOut == "-" {
		return telemetry.WriteText(a.stderr, a.metrics)
	}
	f, err := os.Create(a.flags.metricsOut)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := telemetry.WriteText(f, a.metrics); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
