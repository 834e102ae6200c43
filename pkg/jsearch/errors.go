package jsearch

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure. The split decides whether the retry loop
// re-attempts: only KindRateLimited, KindUnavailable and transport-level
// failures are worth retrying.
type Kind int

const (
	// KindUnauthorized covers 401/403 with a configured key.
	KindUnauthorized Kind = iota

	// KindMissingCredential covers 401/403 when no key was configured.
	KindMissingCredential

	// KindBadRequest covers the remaining non-retryable 4xx responses.
	KindBadRequest

	// KindRateLimited covers 429.
	KindRateLimited

	// KindUnavailable covers 5xx and transport errors.
	KindUnavailable

	// KindMalformed covers 2xx responses whose body does not decode.
	// Retrying cannot fix a malformed payload.
	KindMalformed

	// KindExhausted is returned once the retry budget is spent; the last
	// retryable cause is wrapped.
	KindExhausted

	// KindCancelled reports caller-driven cancellation of an attempt or a
	// pending backoff wait.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindMissingCredential:
		return "missing_credential"
	case KindBadRequest:
		return "bad_request"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	case KindMalformed:
		return "malformed"
	case KindExhausted:
		return "exhausted"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// APIError is the typed failure surfaced by Client.Search.
type APIError struct {
	Kind       Kind
	StatusCode int // zero for transport-level failures
	Attempts   int
	err        error
}

func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("jsearch: %s: %v", e.Kind, e.err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("jsearch: %s (status %d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("jsearch: %s", e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// Retryable reports whether re-attempting the same request may succeed.
func (e *APIError) Retryable() bool {
	return e.Kind == KindRateLimited || e.Kind == KindUnavailable
}

// NewAPIError builds a classified failure wrapping an optional cause.
// Primarily useful for fakes standing in for the real client.
func NewAPIError(kind Kind, cause error) *APIError {
	return &APIError{Kind: kind, err: cause}
}

// AsAPIError unwraps err into an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrEmptyQuery rejects searches with no role before any network call.
var ErrEmptyQuery = errors.New("jsearch: role is required")
