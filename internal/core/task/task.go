package task

import (
	"context"
	"fmt"
	"io"
	"regexp"
)

// namePattern restricts task names to the characters the CLI can address
// directly on the command line.
var namePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_-]*$`)

// Name is a value object representing a validated task name
type Name struct {
	value string
}

// NewName creates a Name with validation
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, fmt.Errorf("task name cannot be empty")
	}
	if !namePattern.MatchString(value) {
		return Name{}, fmt.Errorf("invalid task name: %q", value)
	}
	return Name{value: value}, nil
}

// MustName creates a Name and panics on invalid input. Intended for
// compile-time-constant names inside plugins.
func MustName(value string) Name {
	n, err := NewName(value)
	if err != nil {
		panic(err)
	}
	return n
}

// Value returns the string value of the Name
func (n Name) Value() string {
	return n.value
}

// String implements the Stringer interface
func (n Name) String() string {
	return n.value
}

// IO carries the output streams the executor assigns to a task action.
// Tasks write user-facing output to Stdout; diagnostics go to Stderr.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Task is a named, invokable unit of work registered into a project.
//
// A task declares no inputs and no outputs; its action runs to completion
// on the goroutine the executor assigns it and shares no state between
// invocations.
type Task interface {
	// Name returns the name the task is registered and invoked under.
	Name() Name

	// Description returns a one-line human-readable summary.
	Description() string

	// Run executes the task's action. Any error aborts the invoking
	// command with a non-zero exit status.
	Run(ctx context.Context, streams IO) error
}

// Func adapts a closure into a Task.
type Func struct {
	name        Name
	description string
	action      func(ctx context.Context, streams IO) error
}

// NewFunc creates a Task from a name, description and action closure
func NewFunc(name Name, description string, action func(ctx context.Context, streams IO) error) *Func {
	return &Func{
		name:        name,
		description: description,
		action:      action,
	}
}

// Name returns the task's name
func (f *Func) Name() Name {
	return f.name
}

// Description returns the task's summary line
func (f *Func) Description() string {
	return f.description
}

// Run invokes the wrapped action
func (f *Func) Run(ctx context.Context, streams IO) error {
	return f.action(ctx, streams)
}
