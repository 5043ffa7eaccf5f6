package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "grepbridge"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// ConfigFileYAML is consulted when ConfigFile does not exist
	ConfigFileYAML = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. GREPBRIDGE_SEARCH_CASE_INSENSITIVE=true
	EnvPrefix = "GREPBRIDGE_"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs      FileSystem
	environ func() []string
}

// NewLoader creates a production Loader using the real filesystem and process environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, environ: os.Environ}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and no environment overrides (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return NewLoaderWithEnv(fs, func() []string { return nil })
}

// NewLoaderWithEnv creates a Loader with a custom filesystem and environment source
func NewLoaderWithEnv(fs FileSystem, environ func() []string) *Loader {
	if fs == nil {
		panic("fs is required")
	}
	if environ == nil {
		panic("environ is required")
	}
	return &Loader{fs: fs, environ: environ}
}

// Load reads configuration from ~/.config/grepbridge/config.json (or config.yaml)
// and merges it with defaults, then applies GREPBRIDGE_* environment overrides.
// Returns default config if no dotfile exists.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: Present keys overwrite defaults, including explicit zero values.
// Missing keys leave the defaults untouched.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	raw, path, err := l.readDotfile()
	if err != nil {
		return nil, err
	}
	if raw != nil {
		if err := decodeInto(cfg, raw, false); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	if overrides := envOverrides(l.environ()); len(overrides) > 0 {
		if err := decodeInto(cfg, overrides, true); err != nil {
			return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readDotfile returns the parsed dotfile as a generic map, or nil when none exists.
func (l *Loader) readDotfile() (map[string]any, string, error) {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil, "", nil // Use defaults if can't get home dir
	}

	dir := filepath.Join(homeDir, ".config", ConfigDir)
	for _, name := range []string{ConfigFile, ConfigFileYAML} {
		path := filepath.Join(dir, name)
		data, err := l.fs.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, path, err // Return error for permission issues
		}

		raw := map[string]any{}
		if strings.HasSuffix(name, ".json") {
			err = json.Unmarshal(data, &raw)
		} else {
			err = yaml.Unmarshal(data, &raw)
		}
		if err != nil {
			return nil, path, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return raw, path, nil
	}

	return nil, "", nil
}

// decodeInto applies raw over cfg. Weak typing is used for environment
// values, which always arrive as strings.
func decodeInto(cfg *Config, raw map[string]any, weak bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ZeroFields:       true,
		WeaklyTypedInput: weak,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// envOverrides turns GREPBRIDGE_<SECTION>_<KEY>=value entries into a nested map.
func envOverrides(environ []string) map[string]any {
	out := map[string]any{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || section == "" || key == "" {
			continue
		}
		sub, _ := out[section].(map[string]any)
		if sub == nil {
			sub = map[string]any{}
			out[section] = sub
		}
		sub[key] = value
	}
	return out
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
