package dotconfig

import "fmt"

// SaveError reports a failed write of the saved values file
type SaveError struct {
	Path string // Destination file
	Op   string // Step that failed (create, write, rename)
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %s failed: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SaveError) Unwrap() error {
	return e.Err
}
