package devsettings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	log "git.sr.ht/~spc/go-log"
)

// Runner runs a Django management command.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// ExitError reports a management command that exited unsuccessfully.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("management command exited with status %d", e.Code)
}

// PythonRunner runs "python -m django" with the process environment.
type PythonRunner struct {
	Python string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewPythonRunner returns a PythonRunner attached to the standard streams.
func NewPythonRunner(python string) *PythonRunner {
	return &PythonRunner{Python: python, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *PythonRunner) Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, r.Python, append([]string{"-m", "django"}, args...)...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	log.Debugf("running %v", cmd.Args)
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("cannot run %s: %w", r.Python, err)
	}
	return nil
}
