package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "Direct AppError",
			err:      New(KindInsufficientFunds, "insufficient balance"),
			expected: KindInsufficientFunds,
		},
		{
			name:     "Wrapped AppError",
			err:      fmt.Errorf("handling request: %w", New(KindNotFound, "booking not found")),
			expected: KindNotFound,
		},
		{
			name:     "AppError wrapping a cause",
			err:      Wrap(KindInternal, "failed to settle", errors.New("connection reset")),
			expected: KindInternal,
		},
		{
			name:     "Plain error defaults to internal",
			err:      errors.New("something broke"),
			expected: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
			assert.True(t, IsKind(tt.err, tt.expected))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "insufficient balance", MessageOf(New(KindInsufficientFunds, "insufficient balance")))

	// The cause never leaks into the caller-facing message
	wrapped := Wrap(KindInternal, "failed to settle", errors.New("pq: connection reset"))
	assert.Equal(t, "failed to settle", MessageOf(wrapped))

	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: connection reset")))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "not_found: booking not found", New(KindNotFound, "booking not found").Error())

	wrapped := Wrap(KindInternal, "failed to settle", errors.New("connection reset"))
	assert.Equal(t, "internal: failed to settle: connection reset", wrapped.Error())
}

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(KindConflict, "already reviewed"))

	assert.True(t, errors.Is(err, New(KindConflict, "any message")))
	assert.False(t, errors.Is(err, New(KindNotFound, "any message")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row scan failed")
	err := Wrap(KindInternal, "failed to load wallet", cause)

	assert.True(t, errors.Is(err, cause))
}
