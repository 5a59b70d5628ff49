package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestName_Creation_ValidatesInput tests Name creation with various inputs
func TestName_Creation_ValidatesInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		{
			name:        "SimpleName_ShouldSucceed",
			input:       "random",
			expectError: false,
			description: "Plain lowercase name should be accepted",
		},
		{
			name:        "EmptyName_ShouldFail",
			input:       "",
			expectError: true,
			description: "Empty task name should be rejected",
		},
		{
			name:        "NameWithDashes_ShouldSucceed",
			input:       "print-random",
			expectError: false,
			description: "Dashes are addressable from the command line",
		},
		{
			name:        "NameWithSpaces_ShouldFail",
			input:       "print random",
			expectError: true,
			description: "Spaces cannot be addressed as a single argument",
		},
		{
			name:        "NameStartingWithDigit_ShouldFail",
			input:       "1random",
			expectError: true,
			description: "Names must start with a letter",
		},
		{
			name:        "NameStartingWithUppercase_ShouldFail",
			input:       "Random",
			expectError: true,
			description: "Names are lowercase-first by convention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := NewName(tt.input)
			if tt.expectError {
				assert.Error(t, err, tt.description)
			} else {
				require.NoError(t, err, tt.description)
				assert.Equal(t, tt.input, name.Value())
				assert.Equal(t, tt.input, name.String())
			}
		})
	}
}

// TestMustName_InvalidInput_Panics tests that MustName panics on bad names
func TestMustName_InvalidInput_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustName("")
	})
	assert.NotPanics(t, func() {
		MustName("random")
	})
}

// TestFunc_Run_InvokesAction tests the closure adapter
func TestFunc_Run_InvokesAction(t *testing.T) {
	var out strings.Builder
	invocations := 0

	tsk := NewFunc(MustName("greet"), "Say hello", func(ctx context.Context, streams IO) error {
		invocations++
		_, err := streams.Stdout.Write([]byte("hello\n"))
		return err
	})

	require.Equal(t, "greet", tsk.Name().Value())
	require.Equal(t, "Say hello", tsk.Description())

	err := tsk.Run(context.Background(), IO{Stdout: &out, Stderr: &out})
	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
	assert.Equal(t, "hello\n", out.String())
}
