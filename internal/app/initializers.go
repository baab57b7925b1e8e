package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"standards-fetcher/internal/config"
	"standards-fetcher/internal/logging"
	"standards-fetcher/internal/networker"
	"standards-fetcher/internal/utils"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.uber.org/zap"
)

func InitApp() *FetcherApp {
	initEnv()

	cfg := config.Load()

	logger, logFile := initLogger(cfg.Logging)

	tp, err := initTracing(context.Background(), cfg.Tracing)
	if err != nil {
		logger.Fatalf("Error initializing tracing: %v", err)
	}

	fetcher := networker.NewNetworker(logger)

	fetcherApp := NewFetcherApp(logger, fetcher, StandardsURL, os.Stdout)
	fetcherApp.tracerProvider = tp
	fetcherApp.logFile = logFile

	return fetcherApp
}

func initEnv() {
	if os.Getenv("APP_ENV") == "prod" {
		return
	}

	err := godotenv.Load("main.env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.SugaredLogger, *os.File) {
	logger, logFile, err := newLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	return logger, logFile
}

// newLogger creates the log directory if needed and opens the log file for appending.
func newLogger(cfg config.LoggingConfig, console io.Writer) (*zap.SugaredLogger, *os.File, error) {
	if err := utils.EnsureDir(cfg.Dir); err != nil {
		return nil, nil, err
	}

	logFile, err := logging.OpenLogFile(cfg.Path())
	if err != nil {
		return nil, nil, err
	}

	return logging.New(logFile, console), logFile, nil
}

// initTracing installs a global tracer provider. Spans are exported only when
// an OTLP endpoint is configured.
func initTracing(ctx context.Context, cfg config.TracingConfig) (*trace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}

	if cfg.Endpoint != "" {
		exp, errExp := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
		if errExp != nil {
			return nil, errExp
		}
		opts = append(opts, trace.WithBatcher(exp))
	}

	tracerProvider := trace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tracerProvider)

	return tracerProvider, nil
}
