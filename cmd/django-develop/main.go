// Command django-develop runs a Django management command with development
// settings built from the instance's base settings module.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/PiDelport/django-develop/internal/cli"
)

func main() {
	rt := cli.DefaultRuntime()
	cli.SetupLogging(rt.Stderr, rt.Config.LogLevel)

	// The management command gets interrupts from the terminal itself; stay
	// alive to report its exit status.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		for range signals {
		}
	}()

	err := rt.Activate(context.Background(), os.Args[1:])
	os.Exit(cli.ExitCode(rt.Stderr, err))
}
