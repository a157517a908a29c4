package adapters

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies adapter failures. The workflow engine branches on this:
// retryable kinds requeue with backoff, the rest fail the post outright.
type Kind string

const (
	// KindAuthRevoked means the platform rejected the account's credentials.
	// Not retryable; the account needs re-authorization.
	KindAuthRevoked Kind = "auth_revoked"

	// KindRateLimited means the platform told us to slow down. Retryable
	// after RetryAfter (or our own backoff when the platform sent none).
	KindRateLimited Kind = "rate_limited"

	// KindTransient covers 5xx responses and network failures. Retryable.
	KindTransient Kind = "transient"

	// KindTimeout means the call exceeded its deadline. Retryable; the
	// platform may have acted, so the reconciler must be able to converge.
	KindTimeout Kind = "timeout"

	// KindPermanent covers content rejections and other 4xx responses that
	// will not succeed on retry.
	KindPermanent Kind = "permanent"
)

// Error is a classified adapter failure.
type Error struct {
	Kind       Kind
	Platform   string
	Message    string
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s adapter: %s: %v", e.Platform, e.Message, e.Err)
	}
	return fmt.Sprintf("%s adapter: %s", e.Platform, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is worth another attempt.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindTransient, KindTimeout:
		return true
	default:
		return false
	}
}

// Classify extracts the adapter error from err, wrapping unknown errors as
// transient so an unclassified failure never permanently kills a post.
func Classify(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: KindTransient, Message: err.Error(), Err: err}
}
