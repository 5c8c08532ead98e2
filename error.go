package ipapi

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidQuery is returned for a malformed IP address or a
	// non-existent domain, e.g. "1.1.1.one".
	ErrInvalidQuery = errors.New("invalid query")

	// ErrPrivateRange is returned for addresses in private networks,
	// e.g. "192.168.1.1".
	ErrPrivateRange = errors.New("private range")

	// ErrReservedRange is returned for reserved addresses,
	// e.g. "127.0.0.1".
	ErrReservedRange = errors.New("reserved range")

	// ErrRateLimited is the sentinel error wrapped by [RateLimitError].
	ErrRateLimited = errors.New("rate limited")

	// ErrUnexpectedStatusCode is the sentinel error wrapped by
	// [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")

	// ErrDecode wraps any response body that cannot be deserialized
	// into the expected shape, keeping it distinguishable from
	// transport failures.
	ErrDecode = errors.New("decoding response body")
)

// APIError is a remote-reported lookup failure whose message doesn't
// map to one of the known sentinel errors.
type APIError struct {
	Message string
	Query   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lookup %q failed: %s", e.Query, e.Message)
}

// RateLimitError is returned when the remote API answers 429. The free
// tier allows 45 requests per minute per source address; RetryAfter
// carries the parsed X-Ttl header, the time until the window resets.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// UnexpectedStatusError is returned when the HTTP response status code
// is neither success nor a recognized rate-limit signal.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}

// failErr maps the remote failure message of an envelope to an error.
func failErr(env envelope) error {
	switch env.Message {
	case "invalid query":
		return fmt.Errorf("lookup %q: %w", env.Query, ErrInvalidQuery)
	case "private range":
		return fmt.Errorf("lookup %q: %w", env.Query, ErrPrivateRange)
	case "reserved range":
		return fmt.Errorf("lookup %q: %w", env.Query, ErrReservedRange)
	default:
		return &APIError{Message: env.Message, Query: env.Query}
	}
}
