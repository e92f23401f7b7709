package dynamic

import (
	"errors"
	"fmt"
)

// Dynamic rendering errors. Every failure is per-call: a failed child
// never corrupts the registry or client state for subsequent calls.
var (
	// ErrTimeout reports a call that exceeded the configured timeout.
	// The child was force-terminated and its partial output discarded.
	ErrTimeout = errors.New("dynamic: render timed out")

	// ErrCancelled reports a call whose context was cancelled.
	ErrCancelled = errors.New("dynamic: render cancelled")
)

// SpawnError reports a child process that could not be started.
// There is no retry; the call fails immediately.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("dynamic: spawning %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ChildExitError reports a child that exited with a non-zero status.
// All bytes the child produced were discarded. Stderr carries the
// child's diagnostic text when it wrote one; it is advisory only.
type ChildExitError struct {
	TemplateID string
	ExitCode   int
	Stderr     string
}

func (e *ChildExitError) Error() string {
	msg := fmt.Sprintf("dynamic: child rendering template %q exited with status %d", e.TemplateID, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
