package runner

import (
	"errors"
	"fmt"
)

// Errors returned by invocations.
var (
	// ErrExecutableNotFound indicates the formatter executable could not
	// be started because it does not exist. Callers remediate by
	// re-pointing configuration at the bundled archive.
	ErrExecutableNotFound = errors.New("formatter executable not found")

	// ErrBadManifest indicates the process stdout was not the expected
	// JSON manifest.
	ErrBadManifest = errors.New("unexpected formatter output")
)

// ToolError is a failure the formatter reported through stderr while still
// exiting successfully (zero changes, multiple stderr lines).
type ToolError struct {
	// Message is the first informative stderr line.
	Message string
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	return fmt.Sprintf("php-cs-fixer: %s", e.Message)
}

// ExitError is a nonzero-exit failure, mapped to a human-readable category.
type ExitError struct {
	// Code is the process exit code.
	Code int
	// Message is the mapped category or extracted error text.
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("php-cs-fixer exited with code %d: %s", e.Code, e.Message)
}
