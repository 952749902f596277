package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~spc/go-ini"
	log "git.sr.ht/~spc/go-log"

	"github.com/PiDelport/django-develop/internal/inifile"
)

// DefaultName is the name of the instance directory inside a virtualenv.
const DefaultName = "django-develop-instance"

// ConfigFile is the name of the instance configuration file.
const ConfigFile = "django-develop.ini"

// ErrNotConfigured is returned when no base settings module has been set.
var ErrNotConfigured = errors.New("no base settings module configured")

// Config is the content of the instance configuration file.
type Config struct {
	DjangoDevelop Section `ini:"django-develop"`
}

// Section is the "django-develop" section of the configuration file.
type Section struct {
	BaseSettingsModule string `ini:"base_settings_module"`
}

// Instance is a directory holding the configuration and runtime files of
// one development setup.
type Instance struct {
	Path string
}

// ForEnv returns the instance named name inside the virtualenv at prefix. An
// empty name selects DefaultName.
func ForEnv(prefix, name string) *Instance {
	if name == "" {
		name = DefaultName
	}
	return &Instance{Path: filepath.Join(prefix, name)}
}

// ConfigPath returns the path of the instance configuration file.
func (i *Instance) ConfigPath() string {
	return filepath.Join(i.Path, ConfigFile)
}

// RuntimeDir returns the directory the generated Python package is written to.
func (i *Instance) RuntimeDir() string {
	return filepath.Join(i.Path, "runtime")
}

// Exists reports whether the instance directory exists.
func (i *Instance) Exists() bool {
	info, err := os.Stat(i.Path)
	return err == nil && info.IsDir()
}

// ReadConfig reads the configuration file. A missing file reads as an empty
// Config. Both "key = value" and "key=value" lines are accepted.
func (i *Instance) ReadConfig() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(i.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", i.ConfigPath(), err)
	}
	if err := inifile.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", i.ConfigPath(), err)
	}
	return cfg, nil
}

// WriteConfig replaces the configuration file with cfg.
func (i *Instance) WriteConfig(cfg Config) error {
	data, err := ini.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(i.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", i.ConfigPath(), err)
	}
	return nil
}

// Init creates the instance directory if needed and records baseModule as
// the base settings module.
func (i *Instance) Init(baseModule string) error {
	if !i.Exists() {
		log.Infof("Creating %v", i.Path)
		if err := os.MkdirAll(i.Path, 0755); err != nil {
			return fmt.Errorf("failed to create instance directory: %w", err)
		}
	}

	cfg, err := i.ReadConfig()
	if err != nil {
		return err
	}
	cfg.DjangoDevelop.BaseSettingsModule = baseModule
	return i.WriteConfig(cfg)
}

// BaseSettingsModule returns the configured base settings module.
func (i *Instance) BaseSettingsModule() (string, error) {
	cfg, err := i.ReadConfig()
	if err != nil {
		return "", err
	}
	if cfg.DjangoDevelop.BaseSettingsModule == "" {
		return "", ErrNotConfigured
	}
	return cfg.DjangoDevelop.BaseSettingsModule, nil
}
