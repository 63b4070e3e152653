// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.mvnew/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// HomeEnvVar overrides the directory holding mvnew configuration files.
const HomeEnvVar = "MVNEW_CONFIG_HOME"

const homeDirName = ".mvnew"

// historyLimit caps the number of remembered generations.
const historyLimit = 20

// GlobalConfig represents the ~/.mvnew/config.yaml global configuration.
// It holds coordinate defaults and a short history of generated projects.
type GlobalConfig struct {
	Version  int               `yaml:"version"`
	Defaults Defaults          `yaml:"defaults,omitempty"`
	History  []GenerationEntry `yaml:"history,omitempty"`
}

// Defaults supplies coordinate values used when the matching flag is absent.
type Defaults struct {
	GroupID string `yaml:"group_id,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// GenerationEntry records one successful project generation.
type GenerationEntry struct {
	GroupID    string `yaml:"group_id"`
	ArtifactID string `yaml:"artifact_id"`
	Dir        string `yaml:"dir,omitempty"`
	CreatedAt  string `yaml:"created_at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// ConfigHome returns the directory holding mvnew configuration files,
// honoring the HomeEnvVar override.
func ConfigHome() (string, error) {
	if override := strings.TrimSpace(os.Getenv(HomeEnvVar)); override != "" {
		if !filepath.IsAbs(override) {
			if abs, err := filepath.Abs(override); err == nil {
				return abs, nil
			}
		}
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeDirName), nil
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	dir, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RecordGeneration prepends an entry to the history, trimming it to the
// configured limit.
func RecordGeneration(cfg *GlobalConfig, entry GenerationEntry, now time.Time) {
	entry.CreatedAt = now.Format(time.RFC3339)
	cfg.History = append([]GenerationEntry{entry}, cfg.History...)
	if len(cfg.History) > historyLimit {
		cfg.History = cfg.History[:historyLimit]
	}
}
