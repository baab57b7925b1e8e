package networker

import (
	"context"
	"errors"
	"standards-fetcher/internal/logging"
)

// RemediationHint is appended to every fetch error record.
const RemediationHint = "Ensure the URL is correct and public."

type FailureKind string

const (
	FailureConnection FailureKind = "connection"
	FailureStatus     FailureKind = "status"
	FailureDecode     FailureKind = "decode"
)

// FetchFailure records where a fetch went wrong. All kinds are reported the same way.
type FetchFailure struct {
	Kind FailureKind
	Err  error
}

func (f *FetchFailure) Error() string {
	return f.Err.Error()
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// FetchResult is either a fetched body or a failure, never both.
type FetchResult struct {
	body    string
	failure *FetchFailure
}

func Success(body string) FetchResult {
	return FetchResult{body: body}
}

func Failure(kind FailureKind, err error) FetchResult {
	return FetchResult{failure: &FetchFailure{Kind: kind, Err: err}}
}

// Body returns the fetched text. ok is false for a failed fetch, which is
// distinct from a successful fetch of an empty body.
func (r FetchResult) Body() (body string, ok bool) {
	if r.failure != nil {
		return "", false
	}
	return r.body, true
}

func (r FetchResult) OK() bool {
	return r.failure == nil
}

// Failure returns nil for a successful result.
func (r FetchResult) Failure() *FetchFailure {
	return r.failure
}

func (r FetchResult) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure
}

// IsKind reports whether err is a FetchFailure of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var f *FetchFailure
	return errors.As(err, &f) && f.Kind == kind
}

type Networker interface {
	Fetch(ctx context.Context, url string) FetchResult
	Log(message string, level logging.Level)
}
