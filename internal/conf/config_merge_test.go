package conf

import (
	"os"
	"path/filepath"
	"testing"

	log "git.sr.ht/~spc/go-log"
	"github.com/google/go-cmp/cmp"
)

// TestMissingKeysInDropin tests what happens when a drop-in file
// doesn't specify certain keys - they should NOT overwrite the base config
func TestMissingKeysInDropin(t *testing.T) {
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")
	os.Mkdir(dropinDir, 0755)

	// Main config has all values set
	mainConfig := `
log-level = "INFO"
search-path = ["/srv/app"]
python = "/usr/bin/python3"
instance-name = "dev"
`
	os.WriteFile(mainConfigPath, []byte(mainConfig), 0644)

	// Drop-in file only sets log-level, nothing else
	dropinConfig := `
log-level = "DEBUG"
`
	os.WriteFile(filepath.Join(dropinDir, "10-debug.toml"), []byte(dropinConfig), 0644)

	cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
	config, err := cs.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Config{
		LogLevel:     log.LevelDebug,
		SearchPath:   []string{"/srv/app"},
		Python:       "/usr/bin/python3",
		InstanceName: "dev",
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

// TestEmptyValueOverwrite tests if we can actually set values to empty ones
func TestEmptyValueOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")
	os.Mkdir(dropinDir, 0755)

	mainConfig := `
python = "/usr/bin/python3"
search-path = ["/srv/app"]
`
	os.WriteFile(mainConfigPath, []byte(mainConfig), 0644)

	dropinConfig := `
python = ""
search-path = []
`
	os.WriteFile(filepath.Join(dropinDir, "10-override.toml"), []byte(dropinConfig), 0644)

	cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
	config, err := cs.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Python != "" {
		t.Errorf("python was not overridden to empty: got %s", config.Python)
	}
	if len(config.SearchPath) != 0 {
		t.Errorf("search-path was not overridden to empty: got %v", config.SearchPath)
	}
}
