package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/PiDelport/django-develop/internal/conf"
	"github.com/PiDelport/django-develop/internal/devsettings"
	"github.com/PiDelport/django-develop/internal/instance"
	"github.com/PiDelport/django-develop/internal/l10n"
	"github.com/PiDelport/django-develop/internal/modules"
	"github.com/PiDelport/django-develop/internal/venv"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// Runtime holds what the commands need from their environment.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Config conf.Config
	// DetectEnv finds the virtual environment to work in.
	DetectEnv func() (venv.Env, bool)
	// NewRunner returns the runner for Django management commands.
	NewRunner func(python string) devsettings.Runner
}

// DefaultRuntime returns a Runtime for the current process.
func DefaultRuntime() *Runtime {
	return &Runtime{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Config:    conf.Configuration,
		DetectEnv: venv.Detect,
		NewRunner: func(python string) devsettings.Runner {
			return devsettings.NewPythonRunner(python)
		},
	}
}

// SetupLogging configures the package logger at level.
func SetupLogging(w io.Writer, level log.Level) {
	log.SetOutput(w)
	log.SetFlags(0)
	log.SetLevel(level)
}

// environment returns the virtual environment and the instance in it.
func (rt *Runtime) environment() (venv.Env, *instance.Instance, error) {
	env, ok := rt.DetectEnv()
	if !ok {
		return env, nil, cli.Exit(l10n.T("Run django-develop inside a virtualenv"), ExitUsageError)
	}
	return env, instance.ForEnv(env.Prefix, rt.Config.InstanceName), nil
}

func (rt *Runtime) resolver(extra ...string) *modules.FSResolver {
	roots := modules.SearchPath(append(append([]string(nil), rt.Config.SearchPath...), extra...)...)
	log.Debugf("search path: %v", roots)
	return modules.NewFileResolver(roots)
}

// ExitCode reports err on w and returns the process exit status for it.
func ExitCode(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *devsettings.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := fmt.Sprint(coder); msg != "" {
			fmt.Fprintln(w, msg)
		}
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "django-develop: %v\n", err)
	return ExitFailure
}
