// Command django-develop-config sets the base settings module of the
// django-develop instance, or lists candidates when called without one.
package main

import (
	"os"

	"github.com/PiDelport/django-develop/internal/cli"
)

func main() {
	rt := cli.DefaultRuntime()
	err := rt.ConfigApp().Run(os.Args)
	os.Exit(cli.ExitCode(rt.Stderr, err))
}
