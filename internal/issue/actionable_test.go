// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "build project image"},
			want: "failed to build project image",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "/tmp/conf.yaml"},
			want: "failed to load configuration: /tmp/conf.yaml",
		},
		{
			name: "with cause",
			err:  &ActionableError{Operation: "build project image", Cause: errors.New("exit status 1")},
			want: "failed to build project image: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := WrapWithOperation(fmt.Errorf("wrapped: %w", cause), "run container")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through the actionable wrapper")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("start notebook server").
		WithSuggestion("Specify an alternative port number with --port").
		Wrap(fmt.Errorf("port taken: %w", errors.New("address in use"))).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "• Specify an alternative port number with --port") {
		t.Errorf("suggestions missing from output:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("non-verbose output should omit the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("verbose output should include the error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "2. address in use") {
		t.Errorf("verbose output should unwrap the full chain:\n%s", verbose)
	}
}

func TestErrorContext_RequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("thing").Build(); got != nil {
		t.Errorf("Build without operation should return nil, got %v", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError without operation should return nil error, got %v", got)
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("wrapping nil should return nil, got %v", got)
	}
}
