package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyNamespace, "namespace has no commands")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeEmptyNamespace {
		t.Errorf("expected code %s, got %s", ErrCodeEmptyNamespace, err.Code)
	}
	if err.Message != "namespace has no commands" {
		t.Errorf("expected message 'namespace has no commands', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("invalid syntax")
	ctx := map[string]any{
		"callable":  "typed",
		"parameter": "first",
	}

	err := WrapWithContext(ErrCodeTypeConversion, "could not convert first", cause, ctx)

	if err.Code != ErrCodeTypeConversion {
		t.Errorf("expected code %s, got %s", ErrCodeTypeConversion, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["parameter"] != "first" {
		t.Errorf("expected parameter to be first")
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
			err:      New(ErrCodeMissingArgument, "required arg (first) missing"),
			expected: "[MISSING_ARGUMENT] required arg (first) missing",
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
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"structured", New(ErrCodeUnknownCommand, "x"), ErrCodeUnknownCommand},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(ErrCodeMissingOption, "x")), ErrCodeMissingOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeTypeConversion, "bad token")
	outer := Wrap(ErrCodeInternal, "invoke failed", inner)

	if !Is(outer, ErrCodeInternal) {
		t.Error("expected outer code to match")
	}
	if !Is(outer, ErrCodeTypeConversion) {
		t.Error("expected inner code to match through the cause chain")
	}
	if Is(outer, ErrCodeEmptyNamespace) {
		t.Error("unexpected match for unrelated code")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("nil error should never match")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeUnsupportedType,
		ErrCodeEmptyNamespace,
		ErrCodeTypeConversion,
		ErrCodeMissingArgument,
		ErrCodeMissingOption,
		ErrCodeVariadicParameter,
		ErrCodeInvalidDeclaration,
		ErrCodeUnknownCommand,
		ErrCodeUnexpectedArgument,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
