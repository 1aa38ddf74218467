package customerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty result", ErrEmptyResult, true},
		{"wrapped empty result", fmt.Errorf("fetch: %w", ErrEmptyResult), true},
		{"transient", NewTransientError("yahoo", errors.New("connection reset")), true},
		{"wrapped transient", fmt.Errorf("fetch: %w", NewTransientError("yahoo", errors.New("503"))), true},
		{"unsupported capability", ErrUnsupportedCapability, false},
		{"exhausted", ErrExhausted, false},
		{"context cancellation", context.Canceled, false},
		{"arbitrary error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestTransientError(t *testing.T) {
	t.Parallel()

	cause := errors.New("status 429")
	err := NewTransientError("alphavantage", cause)

	if got := err.Error(); got != "alphavantage: transient failure: status 429" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}

	var transient *TransientError
	if !errors.As(err, &transient) {
		t.Fatal("errors.As should match *TransientError")
	}
	if transient.Provider != "alphavantage" {
		t.Errorf("unexpected provider: %q", transient.Provider)
	}
}
