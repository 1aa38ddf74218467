package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyResult            = errors.New("provider returned no usable data")
	ErrExhausted              = errors.New("no data source could satisfy the request")
	ErrUnsupportedCapability  = errors.New("request not supported by this provider")
	ErrWatchlistEntryNotFound = errors.New("watchlist entry not found")
)

// TransientError marks a retryable provider failure (timeout, transport
// error, bad status, malformed payload) and keeps the cause attached.
type TransientError struct {
	Provider string
	Err      error
}

func NewTransientError(provider string, err error) *TransientError {
	return &TransientError{Provider: provider, Err: err}
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient failure: %v", e.Provider, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt against the same provider may
// succeed. Everything outside the taxonomy is treated as non-retryable.
func Retryable(err error) bool {
	var transient *TransientError
	return errors.Is(err, ErrEmptyResult) || errors.As(err, &transient)
}
