package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"standards-fetcher/internal/logging"
	"standards-fetcher/internal/networker"
	"standards-fetcher/internal/utils"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	StandardsURL = "https://raw.githubusercontent.com/Projectbits/code_std/main/Coding%20Standards.md"
	PreviewLimit = 500
)

type FetcherApp struct {
	logger         *zap.SugaredLogger
	networker      networker.Networker
	tracerProvider *sdktrace.TracerProvider
	logFile        io.Closer

	url          string
	out          io.Writer
	previewLimit int
}

func NewFetcherApp(logger *zap.SugaredLogger, nw networker.Networker, url string, out io.Writer) *FetcherApp {
	return &FetcherApp{
		logger:       logger,
		networker:    nw,
		url:          url,
		out:          out,
		previewLimit: PreviewLimit,
	}
}

// Run fetches the standards once and prints a preview when there is content.
// A failed fetch or an empty body prints nothing; the outcome is in the logs.
func (app *FetcherApp) Run(ctx context.Context) {
	app.networker.Log("Script started", logging.Info)

	res := app.networker.Fetch(ctx, app.url)
	if content, ok := res.Body(); ok && content != "" {
		app.networker.Log(fmt.Sprintf("Standards content (first %d chars):", app.previewLimit), logging.Info)
		fmt.Fprintln(app.out, utils.Preview(content, app.previewLimit))
	}

	app.networker.Log("Script completed", logging.Info)
}

func (app *FetcherApp) StopApp(ctx context.Context) error {
	var errs []error

	// Sync on a terminal stdout reports EINVAL, so it is not treated as a failure.
	_ = app.logger.Sync()

	if app.tracerProvider != nil {
		if err := app.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
		}
	}

	if app.logFile != nil {
		if err := app.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
	}

	return errors.Join(errs...)
}
