package cli

import (
	"fmt"

	log "git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/PiDelport/django-develop/internal/conf"
	"github.com/PiDelport/django-develop/internal/discovery"
	"github.com/PiDelport/django-develop/internal/instance"
	"github.com/PiDelport/django-develop/internal/l10n"
)

const (
	cliAll      = "all"
	cliLogLevel = "log-level"
	cliPath     = "path"
)

// ConfigApp returns the django-develop-config command line application.
func (rt *Runtime) ConfigApp() *cli.App {
	return &cli.App{
		Name:            "django-develop-config",
		Usage:           l10n.T("choose the base settings module of the django-develop instance"),
		ArgsUsage:       "<base_settings_module>",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    cliAll,
				Aliases: []string{"a"},
				Usage:   l10n.T("list candidate settings modules even if they look wrong"),
			},
			&cli.StringFlag{
				Name:  cliLogLevel,
				Usage: l10n.T("set the log level (ERROR, WARN, INFO, DEBUG, TRACE)"),
			},
			&cli.StringSliceFlag{
				Name:  cliPath,
				Usage: l10n.T("also search `DIR` for settings modules"),
			},
		},
		Writer:    rt.Stdout,
		ErrWriter: rt.Stderr,
		Before: func(c *cli.Context) error {
			level := rt.Config.LogLevel
			if name := c.String(cliLogLevel); name != "" {
				var err error
				level, err = conf.ParseLevel(name)
				if err != nil {
					return cli.Exit(err, ExitUsageError)
				}
			}
			SetupLogging(rt.Stderr, level)
			return nil
		},
		Action: rt.configure,
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return cli.Exit(err, ExitUsageError)
		},
		// Errors are turned into exit codes by the caller.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (rt *Runtime) configure(c *cli.Context) error {
	_, inst, err := rt.environment()
	if err != nil {
		return err
	}
	r := rt.resolver(c.StringSlice(cliPath)...)

	switch c.NArg() {
	case 1:
		baseModule := c.Args().First()
		if err := inst.Init(baseModule); err != nil {
			return err
		}
		if problems := discovery.FindPotentialProblems(r, baseModule); len(problems) > 0 {
			log.Warnf("%v may not be a settings module: %v", baseModule, problems)
		}
		return nil
	case 0:
		rt.printStatus(inst)
	default:
		fmt.Fprintln(rt.Stdout, l10n.T("Usage: django-develop-config <base_settings_module>"))
		fmt.Fprintln(rt.Stdout)
	}
	discovery.PrintCandidateSettings(rt.Stdout, r, r.Roots(), c.Bool(cliAll))
	return cli.Exit("", ExitUsageError)
}

func (rt *Runtime) printStatus(inst *instance.Instance) {
	baseModule, err := inst.BaseSettingsModule()
	switch {
	case err == nil:
		fmt.Fprintln(rt.Stdout, l10n.T("Current base settings module: %s", baseModule))
		fmt.Fprintln(rt.Stdout, l10n.T("Instance directory: %s", inst.Path))
	case !inst.Exists():
		fmt.Fprintln(rt.Stdout, l10n.T("django-develop is not configured yet."))
	default:
		log.Debugf("reading %v: %v", inst.ConfigPath(), err)
		fmt.Fprintln(rt.Stdout, l10n.T("No base settings module configured."))
	}
	fmt.Fprintln(rt.Stdout)
}
