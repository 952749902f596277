// Package devsettings hands a merged configuration over to Django.
//
// The configuration is written as the Python package django_develop, with
// the modules dev_settings and dev_urls, into a runtime directory that is
// put first on PYTHONPATH. DJANGO_SETTINGS_MODULE then points at
// django_develop.dev_settings and Django's management utility is started.
package devsettings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "git.sr.ht/~spc/go-log"

	"github.com/PiDelport/django-develop/internal/settings"
)

const (
	// EnvironmentVariable names the settings module Django loads.
	EnvironmentVariable = "DJANGO_SETTINGS_MODULE"
	// SettingsModule is the generated settings module.
	SettingsModule = "django_develop.dev_settings"
	// PackageName is the generated Python package.
	PackageName = "django_develop"
)

const devURLs = `# Generated by django-develop; changes are overwritten on every run.
from django.apps import apps
from django.urls import path

urlpatterns = []

if apps.is_installed("django.contrib.admin"):
    from django.contrib import admin

    urlpatterns.append(path("admin/", admin.site.urls))
`

// Write generates the django_develop package holding m under runtimeDir.
func Write(runtimeDir string, m settings.Map) error {
	var src bytes.Buffer
	if err := Render(&src, m); err != nil {
		return err
	}

	pkg := filepath.Join(runtimeDir, PackageName)
	if err := os.MkdirAll(pkg, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", pkg, err)
	}
	files := map[string][]byte{
		"__init__.py":     nil,
		"dev_settings.py": src.Bytes(),
		"dev_urls.py":     []byte(devURLs),
	}
	for name, data := range files {
		path := filepath.Join(pkg, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	log.Debugf("wrote %v", pkg)
	return nil
}

// PointEnvironment sets DJANGO_SETTINGS_MODULE to the generated settings
// module, warning on stderr if it was set to something else.
func PointEnvironment(stderr io.Writer) error {
	if current, ok := os.LookupEnv(EnvironmentVariable); ok && current != SettingsModule {
		fmt.Fprintf(stderr, "django-develop warning: disregarding existing %s (%q)\n", EnvironmentVariable, current)
	}
	return os.Setenv(EnvironmentVariable, SettingsModule)
}

// PrependPythonPath puts dir first on PYTHONPATH.
func PrependPythonPath(dir string) error {
	value := dir
	if current := os.Getenv("PYTHONPATH"); current != "" {
		value = dir + string(os.PathListSeparator) + current
	}
	return os.Setenv("PYTHONPATH", value)
}
