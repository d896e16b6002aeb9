package fallback

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind enumerates why a source attempt did not produce a value.
type Kind int

const (
	// KindSkipped means the source was not attempted, usually because no credential is configured.
	KindSkipped Kind = iota
	// KindTransport covers unreachable hosts, DNS failures and timeouts.
	KindTransport
	// KindUpstream covers non-2xx statuses and undecodable bodies.
	KindUpstream
	// KindEmpty is a well-formed response that carries nothing usable.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindSkipped:
		return "skipped"
	case KindTransport:
		return "transport"
	case KindUpstream:
		return "upstream"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// FetchError is the failure of a single source attempt.
type FetchError struct {
	Source string
	Kind   Kind
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Skipped reports a source that was deliberately not attempted.
func Skipped(source, reason string) *FetchError {
	return &FetchError{Source: source, Kind: KindSkipped, Err: errors.New(reason)}
}

// Transport wraps a network-level failure.
func Transport(source string, err error) *FetchError {
	return &FetchError{Source: source, Kind: KindTransport, Err: err}
}

// Upstream wraps a bad status or malformed body.
func Upstream(source string, err error) *FetchError {
	return &FetchError{Source: source, Kind: KindUpstream, Err: err}
}

// Empty reports a successful call without usable content.
func Empty(source string) *FetchError {
	return &FetchError{Source: source, Kind: KindEmpty, Err: errors.New("no results returned")}
}

// Classify turns an arbitrary error into a FetchError.
// Errors that already are FetchErrors keep their kind.
func Classify(source string, err error) *FetchError {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Transport(source, err)
	}

	return Upstream(source, err)
}
