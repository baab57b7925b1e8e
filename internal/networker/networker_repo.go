package networker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"standards-fetcher/internal/logging"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const tracerName = "standards-fetcher/internal/networker"

type NetworkWorker struct {
	Logger *zap.SugaredLogger
	Client *http.Client
}

// NewNetworker uses a client with no timeout and the default redirect policy.
func NewNetworker(logger *zap.SugaredLogger) *NetworkWorker {
	return &NetworkWorker{
		Logger: logger,
		Client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (repo *NetworkWorker) Log(message string, level logging.Level) {
	logging.Log(repo.Logger, message, level)
}

// Fetch issues a single GET for url. Every failure is logged once at ERROR
// and returned as a Failure result; it never returns an error to the caller.
func (repo *NetworkWorker) Fetch(ctx context.Context, url string) FetchResult {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "networker.Fetch", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	res := repo.fetch(ctx, url)
	if f := res.Failure(); f != nil {
		span.RecordError(f)
		span.SetStatus(codes.Error, string(f.Kind))
		repo.Log(fmt.Sprintf("Error fetching standards: %v. %s", f, RemediationHint), logging.Error)
		return res
	}

	span.SetStatus(codes.Ok, "")
	repo.Log("Successfully fetched standards", logging.Info)
	return res
}

func (repo *NetworkWorker) fetch(ctx context.Context, url string) FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Failure(FailureConnection, fmt.Errorf("%w: %w", ErrConnection, err))
	}

	resp, err := repo.Client.Do(req)
	if err != nil {
		return Failure(FailureConnection, fmt.Errorf("%w: %w", ErrConnection, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Failure(FailureStatus, fmt.Errorf("%w: %s for url: %s", ErrStatus, resp.Status, url))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(FailureDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	// charset.NewReader reports io.EOF for an empty body.
	if len(raw) == 0 {
		return Success("")
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return Failure(FailureDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return Failure(FailureDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	return Success(string(body))
}
