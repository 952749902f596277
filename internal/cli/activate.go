package cli

import (
	"context"
	"errors"
	"fmt"

	log "git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/PiDelport/django-develop/internal/devsettings"
	"github.com/PiDelport/django-develop/internal/instance"
	"github.com/PiDelport/django-develop/internal/l10n"
	"github.com/PiDelport/django-develop/internal/settings"
)

// Activate prepares the development settings of the current instance and
// runs Django's management utility with args.
func (rt *Runtime) Activate(ctx context.Context, args []string) error {
	env, inst, err := rt.environment()
	if err != nil {
		return err
	}

	notConfigured := cli.Exit(l10n.T(`django-develop not configured, try "django-develop-config"`), ExitUsageError)
	if !inst.Exists() {
		return notConfigured
	}
	baseModule, err := inst.BaseSettingsModule()
	if errors.Is(err, instance.ErrNotConfigured) {
		return notConfigured
	}
	if err != nil {
		return err
	}

	base, err := rt.resolver().Load(baseModule)
	if err != nil {
		fmt.Fprintln(rt.Stderr, l10n.T("django-develop: failed to import base settings module %q, check %s", baseModule, inst.ConfigPath()))
		return err
	}

	merged := settings.Map{}
	settings.Merge(base.Constants(), merged, inst.Path)
	log.Debugf("merged settings: %v", merged.Names())

	if err := devsettings.Write(inst.RuntimeDir(), merged); err != nil {
		return err
	}
	if err := devsettings.PrependPythonPath(inst.RuntimeDir()); err != nil {
		return fmt.Errorf("cannot set PYTHONPATH: %w", err)
	}
	if err := devsettings.PointEnvironment(rt.Stderr); err != nil {
		return fmt.Errorf("cannot set %s: %w", devsettings.EnvironmentVariable, err)
	}

	python := rt.Config.Python
	if python == "" {
		python = env.Python()
	}
	return rt.NewRunner(python).Run(ctx, args)
}
