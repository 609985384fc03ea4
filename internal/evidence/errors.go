package evidence

import "fmt"

// BuildError represents a failure to assemble an evidence ledger
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("evidence build error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("evidence build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
