package cli

import (
	"errors"
	"fmt"
)

var errMissingTarget = errors.New("destroy needs a container ID or --image")

// Carries a container's exit code to the process exit.
//
// Returned by 'run' when the container's process exits non-zero, so the CLI
// can terminate with the same code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
