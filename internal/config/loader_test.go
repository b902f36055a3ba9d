package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
	if loader.envFile != ".env" {
		t.Errorf("Expected .env file, got %s", loader.envFile)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Series.DefaultTerms != 10 {
		t.Errorf("Expected default terms 10, got %d", cfg.Series.DefaultTerms)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeConfigFile(t, `version: "1.0"
series:
  default_angle: "30"
  default_terms: 25
  radian_mode: true
plot:
  sample_density: 2.5
output:
  default_format: "json"
  precision: 6
`)

	cfg, err := (&Loader{}).LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Series.DefaultAngle != "30" {
		t.Errorf("Expected default angle 30, got %s", cfg.Series.DefaultAngle)
	}
	if cfg.Series.DefaultTerms != 25 {
		t.Errorf("Expected 25 terms, got %d", cfg.Series.DefaultTerms)
	}
	if !cfg.Series.RadianMode {
		t.Error("Expected radian mode to be true")
	}
	if cfg.Plot.SampleDensity != 2.5 {
		t.Errorf("Expected sample density 2.5, got %v", cfg.Plot.SampleDensity)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("Expected precision 6, got %d", cfg.Output.Precision)
	}

	// Keys absent from the file keep their defaults
	if cfg.Plot.CurveWidth != 600 {
		t.Errorf("Expected curve width to remain 600, got %v", cfg.Plot.CurveWidth)
	}
	if !cfg.Output.ShowComparison {
		t.Error("Expected show_comparison to remain true")
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("Expected theme to remain default, got %s", cfg.UI.Theme)
	}
}

func TestLoadConfigExplicitFalse(t *testing.T) {
	configPath := writeConfigFile(t, `output:
  show_comparison: false
`)

	cfg, err := (&Loader{}).LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Output.ShowComparison {
		t.Error("Expected show_comparison to be overridden to false")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeConfigFile(t, `version: "1.0"
series:
  default_terms: 10
  # Invalid YAML - missing closing quote
output:
  default_format: "json
  verbose: true
`)

	if _, err := (&Loader{}).LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	configPath := writeConfigFile(t, `series:
  default_terms: 100
`)

	_, err := (&Loader{}).LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected validation error for 100 terms")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadFromFileKeepsConfigOnError(t *testing.T) {
	cfg := DefaultConfig()
	path := writeConfigFile(t, "series: [not, a, map]\n")

	if err := NewLoader().loadFromFile(cfg, path); err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg.Series.DefaultTerms != 10 {
		t.Errorf("Config should be untouched after a failed load, got %d terms", cfg.Series.DefaultTerms)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TAYLORSUM_SERIES_DEFAULT_TERMS", "42")
	t.Setenv("TAYLORSUM_SERIES_RADIAN_MODE", "true")
	t.Setenv("TAYLORSUM_PLOT_CURVE_WIDTH", "320")
	t.Setenv("TAYLORSUM_OUTPUT_DEFAULT_FORMAT", "markdown")
	t.Setenv("TAYLORSUM_OUTPUT_SHOW_TERMS", "true")
	t.Setenv("TAYLORSUM_UI_THEME", "minimal")

	cfg := DefaultConfig()
	if err := NewLoader().applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Series.DefaultTerms != 42 {
		t.Errorf("Expected 42 terms, got %d", cfg.Series.DefaultTerms)
	}
	if !cfg.Series.RadianMode {
		t.Error("Expected radian mode to be true")
	}
	if cfg.Plot.CurveWidth != 320 {
		t.Errorf("Expected curve width 320, got %v", cfg.Plot.CurveWidth)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("Expected markdown output, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.ShowTerms {
		t.Error("Expected show_terms to be true")
	}
	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected minimal theme, got %s", cfg.UI.Theme)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid int", "TAYLORSUM_SERIES_DEFAULT_TERMS", "not-a-number"},
		{"invalid bool", "TAYLORSUM_OUTPUT_VERBOSE", "not-a-bool"},
		{"invalid float", "TAYLORSUM_PLOT_SAMPLE_DENSITY", "dense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			err := NewLoader().applyEnvOverrides(DefaultConfig())
			if err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			} else if !strings.Contains(err.Error(), tt.envVar) {
				t.Errorf("Expected error to name %s, got %v", tt.envVar, err)
			}
		})
	}
}

func TestEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "TAYLORSUM_SERIES_DEFAULT_ANGLE=120\nTAYLORSUM_OUTPUT_PRECISION=4\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	// A variable already present in the environment wins over the file
	t.Setenv("TAYLORSUM_OUTPUT_PRECISION", "8")
	// Register cleanup for the variable the file will set
	t.Setenv("TAYLORSUM_SERIES_DEFAULT_ANGLE", "")
	if err := os.Unsetenv("TAYLORSUM_SERIES_DEFAULT_ANGLE"); err != nil {
		t.Fatalf("Failed to unset env: %v", err)
	}

	loader := &Loader{envFile: envPath}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Series.DefaultAngle != "120" {
		t.Errorf("Expected default angle from .env, got %s", cfg.Series.DefaultAngle)
	}
	if cfg.Output.Precision != 8 {
		t.Errorf("Expected process env to win, got precision %d", cfg.Output.Precision)
	}
}

func TestParseHelpers(t *testing.T) {
	var i int
	if err := parseInt("42", &i); err != nil || i != 42 {
		t.Errorf("parseInt = %d, %v", i, err)
	}
	if err := parseInt("x", &i); err == nil {
		t.Error("Expected error for invalid int")
	}

	var f float64
	if err := parseFloat("2.5", &f); err != nil || f != 2.5 {
		t.Errorf("parseFloat = %v, %v", f, err)
	}
	if err := parseFloat("x", &f); err == nil {
		t.Error("Expected error for invalid float")
	}

	var b bool
	if err := parseBool("true", &b); err != nil || !b {
		t.Errorf("parseBool = %v, %v", b, err)
	}
	if err := parseBool("not-a-bool", &b); err == nil {
		t.Error("Expected error for invalid bool")
	}
}

func TestFindConfigFile(t *testing.T) {
	tempConfigPath := "./.taylorsum.yaml"
	if err := os.WriteFile(tempConfigPath, []byte("version: 1.0"), 0o600); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	defer func() { _ = os.Remove(tempConfigPath) }()

	configPath, found := FindConfigFile()
	if !found {
		t.Error("Expected config file to be found, but none was found")
	}
	if configPath != tempConfigPath {
		t.Errorf("Expected config path %s, got %s", tempConfigPath, configPath)
	}
}

func TestFileExists(t *testing.T) {
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	tempFile := filepath.Join(t.TempDir(), "test-file")
	if err := os.WriteFile(tempFile, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "valid yaml file", path: "config.yaml"},
		{name: "valid yml file", path: "config.yml"},
		{name: "relative path with valid extension", path: "./configs/app.yaml"},
		{name: "path traversal attempt", path: "../../../etc/passwd", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "non-yaml file", path: "config.txt", wantErr: true, errMsg: "config file must have .yaml or .yml extension"},
		{name: "proc filesystem access", path: "/proc/version.yaml", wantErr: true, errMsg: "access to system files not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 config paths, got %d", len(paths))
	}
	if paths[0] != "./.taylorsum.yaml" {
		t.Errorf("Expected ./.taylorsum.yaml first, got %s", paths[0])
	}
	if strings.HasPrefix(paths[1], "~") {
		t.Errorf("Expected home path to be expanded, got %s", paths[1])
	}
	if paths[2] != "/etc/taylorsum/config.yaml" {
		t.Errorf("Expected /etc/taylorsum/config.yaml last, got %s", paths[2])
	}
}
