package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeStagingIO, "staging directory not created")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeStagingIO {
		t.Errorf("expected code %s, got %s", ErrCodeStagingIO, err.Code)
	}
	if err.Message != "staging directory not created" {
		t.Errorf("expected message 'staging directory not created', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeArchival, "tar exited in failure", cause)

	if err.Code != ErrCodeArchival {
		t.Errorf("expected code %s, got %s", ErrCodeArchival, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("deadline exceeded")
	ctx := map[string]any{
		"source": "journalctl",
		"args":   "--since yesterday",
	}

	err := WrapWithContext(ErrCodeTimeout, "source timed out", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["source"] != "journalctl" {
		t.Errorf("expected source to be journalctl")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeSourceUnavailable, "missing"),
			expected: "[SOURCE_UNAVAILABLE] missing",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ErrCodeInternal},
		{name: "structured", err: New(ErrCodeTimeout, "slow"), want: ErrCodeTimeout},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("outer: %w", New(ErrCodeArchival, "tar")),
			want: ErrCodeArchival,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}

	if !IsCode(New(ErrCodeStagingIO, "x"), ErrCodeStagingIO) {
		t.Error("IsCode should match the carried code")
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeSourceUnavailable,
		ErrCodeStagingIO,
		ErrCodeArchival,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
