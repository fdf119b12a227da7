package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "render"},
			expected: "render",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open log file", Target: "/tmp/clekey.log"},
			expected: "open log file /tmp/clekey.log",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "apply config", Target: "output", Context: "reload", Err: errors.New("no clipboard")},
			expected: "apply config output (reload): no clipboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewOperationError("render", "", inner).WithContext("frame")
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(%v, inner) = false, want true", err)
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext() on nil = non-nil, want nil")
	}
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap() on nil = non-nil, want nil")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "output", Err: ErrNoDevice}
	if got, want := err.Error(), "init output: no input device"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInitialization) || !errors.Is(err, ErrNoDevice) {
		t.Errorf("errors.Is(%v) = false, want ErrInitialization and ErrNoDevice", err)
	}
}
