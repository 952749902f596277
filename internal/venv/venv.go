// Package venv detects the Python virtual environment django-develop runs in.
package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "git.sr.ht/~spc/go-log"

	"github.com/PiDelport/django-develop/internal/inifile"
)

// EnvironmentVariable is set by the activate scripts of venv and virtualenv.
const EnvironmentVariable = "VIRTUAL_ENV"

// Env describes an active virtual environment.
type Env struct {
	Prefix string
	// Home and Version come from pyvenv.cfg and are empty for environments
	// created by legacy virtualenv.
	Home    string
	Version string
}

// pyvenv.cfg is written by the venv module ("version") or by virtualenv
// ("version_info").
type pyvenvConfig struct {
	Home        string `ini:"home"`
	Version     string `ini:"version"`
	VersionInfo string `ini:"version_info"`
}

// Detect returns the active virtual environment, if any. The directory named
// by VIRTUAL_ENV must hold either a pyvenv.cfg or a legacy virtualenv
// activate script.
func Detect() (Env, bool) {
	prefix := os.Getenv(EnvironmentVariable)
	if prefix == "" {
		return Env{}, false
	}
	info, err := os.Stat(prefix)
	if err != nil || !info.IsDir() {
		log.Debugf("%v=%v is not a directory", EnvironmentVariable, prefix)
		return Env{}, false
	}

	env := Env{Prefix: prefix}
	data, err := os.ReadFile(filepath.Join(prefix, "pyvenv.cfg"))
	if err == nil {
		var cfg pyvenvConfig
		if err := inifile.Unmarshal(data, &cfg); err != nil {
			log.Debugf("cannot parse pyvenv.cfg: %v", err)
		}
		env.Home = cfg.Home
		env.Version = cfg.Version
		if env.Version == "" {
			env.Version = cfg.VersionInfo
		}
		log.Debugf("venv %v: Python %v from %v", prefix, env.Version, env.Home)
		return env, true
	}
	if _, err := os.Stat(filepath.Join(binDir(prefix), "activate")); err == nil {
		return env, true
	}
	log.Debugf("%v is neither a venv nor a virtualenv", prefix)
	return Env{}, false
}

// Python returns the path of the environment's interpreter. On environments
// lacking a plain "python" link, the versioned name from pyvenv.cfg is tried
// next.
func (e Env) Python() string {
	bin := binDir(e.Prefix)
	if runtime.GOOS == "windows" {
		return filepath.Join(bin, "python.exe")
	}
	python := filepath.Join(bin, "python")
	if _, err := os.Stat(python); err == nil {
		return python
	}
	for _, name := range e.versionedNames() {
		candidate := filepath.Join(bin, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return python
}

// versionedNames returns "python3.11" and "python3" for version "3.11.4".
func (e Env) versionedNames() []string {
	parts := strings.SplitN(e.Version, ".", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	return []string{"python" + parts[0] + "." + parts[1], "python" + parts[0]}
}

func binDir(prefix string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(prefix, "Scripts")
	}
	return filepath.Join(prefix, "bin")
}
