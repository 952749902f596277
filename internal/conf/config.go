package conf

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	log "git.sr.ht/~spc/go-log"
)

func init() {
	sources, err := DefaultSource()
	if err != nil {
		sources = &ConfigSource{}
	}
	config, err := sources.Read()
	if err != nil {
		dto, parseErr := parseConfigDTO(defaultConfig)
		if parseErr != nil {
			panic(fmt.Sprintf("failed to parse embedded defaults: %v", parseErr))
		}
		config = Config{}
		config.Update(dto)
	}
	Configuration = config
}

// defaultConfig contains the embedded default configuration file.
// This file is compiled into the binary and serves as the base layer
// of configuration before config.toml and drop-in files are applied.
//
//go:embed defaults.toml
var defaultConfig string

// Configuration is the global immutable state.
var Configuration Config

// Config represents the immutable public configuration object.
type Config struct {
	LogLevel     log.Level
	SearchPath   []string
	Python       string
	InstanceName string
}

// Update applies non-nil values from a configDTO.
func (c *Config) Update(dto configDTO) {
	if dto.LogLevel != nil {
		level, err := ParseLevel(*dto.LogLevel)
		if err != nil {
			log.Warnf("ignoring log-level: %v", err)
		} else {
			c.LogLevel = level
		}
	}
	if dto.SearchPath != nil {
		c.SearchPath = append([]string(nil), (*dto.SearchPath)...)
	}
	if dto.Python != nil {
		c.Python = *dto.Python
	}
	if dto.InstanceName != nil {
		c.InstanceName = *dto.InstanceName
	}
}

// ParseLevel converts a level name such as "DEBUG" or "warn" to a log.Level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToUpper(name) {
	case "ERROR":
		return log.LevelError, nil
	case "WARN", "WARNING":
		return log.LevelWarn, nil
	case "INFO":
		return log.LevelInfo, nil
	case "DEBUG":
		return log.LevelDebug, nil
	case "TRACE":
		return log.LevelTrace, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// ConfigSource orchestrates loading configuration from multiple sources.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// DefaultSource returns the per-user configuration source, honouring
// XDG_CONFIG_HOME.
func DefaultSource() (*ConfigSource, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	path := filepath.Join(dir, "django-develop", "config.toml")
	return &ConfigSource{Path: path, DropInDir: path + ".d"}, nil
}

// Read loads and returns the complete Config by merging all layers:
// 1. Embedded defaults
// 2. Main configuration file
// 3. Drop-in files
func (cs *ConfigSource) Read() (Config, error) {
	resolved := Config{}

	// Start with embedded defaults
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		return resolved, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	resolved.Update(dto)

	// Load main configuration file
	if cs.Path != "" {
		data, err := os.ReadFile(cs.Path)
		if err != nil {
			if !os.IsNotExist(err) {
				// Existing but unreadable file should result in failure (let's not
				// hide problems from the users).
				return resolved, fmt.Errorf("failed to load %s: %w", cs.Path, err)
			}
		} else {
			mainDTO, err := parseConfigDTO(string(data))
			if err != nil {
				return resolved, fmt.Errorf("failed to parse %s: %w", cs.Path, err)
			}
			resolved.Update(mainDTO)
		}
	}

	// Load drop-in files
	dropInDTOs, err := cs.parseDropInFiles()
	if err != nil {
		return resolved, err
	}

	// Apply each drop-in file in order
	for _, dropInDTO := range dropInDTOs {
		resolved.Update(dropInDTO)
	}

	return resolved, nil
}

type configDTO struct {
	LogLevel     *string   `toml:"log-level"`
	SearchPath   *[]string `toml:"search-path"`
	Python       *string   `toml:"python"`
	InstanceName *string   `toml:"instance-name"`
}

// parseConfigDTO parses a TOML string into a configDTO.
func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO

	if err := toml.Unmarshal([]byte(data), &dto); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return dto, nil
}

// findDropInFiles finds and returns sorted paths to drop-in configuration files.
// Returns nil if the drop-in directory doesn't exist (not an error).
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(cs.DropInDir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".toml") {
			filenames = append(filenames, filepath.Join(cs.DropInDir, entry.Name()))
		}
	}

	sort.Strings(filenames)

	return filenames, nil
}

// parseDropInFiles loads .toml files.
func (cs *ConfigSource) parseDropInFiles() ([]configDTO, error) {
	paths, err := cs.findDropInFiles()
	if err != nil {
		return nil, err
	}

	var dtos []configDTO
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		dto, err := parseConfigDTO(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		dtos = append(dtos, dto)
	}

	return dtos, nil
}
