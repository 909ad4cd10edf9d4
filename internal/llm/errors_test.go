package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"rate limit", &ErrRateLimit{RetryAfter: time.Second}, "rate-limit"},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad json")}, "invalid-response"},
		{"max tokens", &ErrMaxTokensExceeded{}, "max-tokens"},
		{"unavailable", &ErrProviderUnavailable{Err: errors.New("503")}, "unavailable"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"wrapped deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), "timeout"},
		{"wrapped rate limit", fmt.Errorf("generate: %w", &ErrRateLimit{}), "rate-limit"},
		{"plain error", errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Fatalf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("inner")

	if got := errors.Unwrap(&ErrRateLimit{Err: inner}); got != inner {
		t.Fatalf("ErrRateLimit unwrapped to %v", got)
	}
	if got := errors.Unwrap(&ErrInvalidResponse{Err: inner}); got != inner {
		t.Fatalf("ErrInvalidResponse unwrapped to %v", got)
	}
	if got := errors.Unwrap(&ErrProviderUnavailable{Err: inner}); got != inner {
		t.Fatalf("ErrProviderUnavailable unwrapped to %v", got)
	}
}
