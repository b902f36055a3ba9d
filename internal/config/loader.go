package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TAYLORSUM_"

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.taylorsum.yaml",               // Project-specific config (highest priority)
	"~/.config/taylorsum/config.yaml", // User config
	"/etc/taylorsum/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFile     string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFile:     ".env",
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including ./.env)
// 3. ./.taylorsum.yaml
// 4. ~/.config/taylorsum/config.yaml
// 5. /etc/taylorsum/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.loadEnvFile(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.envFile, err)
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over config. Keys absent from the file keep
// their current values; on a parse error config is left untouched.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	merged := *config
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	*config = merged
	return nil
}

// loadEnvFile exports variables from the .env file, never overriding
// variables already set in the process environment
func (l *Loader) loadEnvFile() error {
	if l.envFile == "" || !fileExists(l.envFile) {
		return nil
	}
	return godotenv.Load(l.envFile)
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Series Config
		"SERIES_DEFAULT_ANGLE": func(v string) error { config.Series.DefaultAngle = v; return nil },
		"SERIES_DEFAULT_TERMS": func(v string) error { return parseInt(v, &config.Series.DefaultTerms) },
		"SERIES_RADIAN_MODE":   func(v string) error { return parseBool(v, &config.Series.RadianMode) },

		// Plot Config
		"PLOT_SAMPLE_DENSITY": func(v string) error { return parseFloat(v, &config.Plot.SampleDensity) },
		"PLOT_CURVE_WIDTH":    func(v string) error { return parseFloat(v, &config.Plot.CurveWidth) },
		"PLOT_IMAGE_WIDTH":    func(v string) error { return parseFloat(v, &config.Plot.ImageWidth) },
		"PLOT_IMAGE_HEIGHT":   func(v string) error { return parseFloat(v, &config.Plot.ImageHeight) },
		"PLOT_OUTPUT_PATH":    func(v string) error { config.Plot.OutputPath = v; return nil },

		// Output Config
		"OUTPUT_DEFAULT_FORMAT":  func(v string) error { config.Output.DefaultFormat = v; return nil },
		"OUTPUT_COLOR_MODE":      func(v string) error { config.Output.ColorMode = v; return nil },
		"OUTPUT_VERBOSE":         func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"OUTPUT_PRECISION":       func(v string) error { return parseInt(v, &config.Output.Precision) },
		"OUTPUT_SHOW_COMPARISON": func(v string) error { return parseBool(v, &config.Output.ShowComparison) },
		"OUTPUT_SHOW_TERMS":      func(v string) error { return parseBool(v, &config.Output.ShowTerms) },

		// UI Config
		"UI_THEME":      func(v string) error { config.UI.Theme = v; return nil },
		"UI_SHOW_CURVE": func(v string) error { return parseBool(v, &config.UI.ShowCurve) },
	}

	for suffix, setter := range envMappings {
		envVar := EnvPrefix + suffix
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
