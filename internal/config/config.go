package config

import (
	"fmt"

	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/series"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Series  SeriesConfig `yaml:"series" json:"series"`
	Plot    PlotConfig   `yaml:"plot" json:"plot"`
	Output  OutputConfig `yaml:"output" json:"output"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
}

// SeriesConfig configures the calculator inputs used at start-up
type SeriesConfig struct {
	DefaultAngle string `yaml:"default_angle" json:"default_angle"` // angle text
	DefaultTerms int    `yaml:"default_terms" json:"default_terms"` // 1-50
	RadianMode   bool   `yaml:"radian_mode" json:"radian_mode"`     // interpret angles as radians
}

// PlotConfig configures curve sampling and image rendering
type PlotConfig struct {
	SampleDensity float64 `yaml:"sample_density" json:"sample_density"` // samples per unit of curve width
	CurveWidth    float64 `yaml:"curve_width" json:"curve_width"`       // abstract curve width
	ImageWidth    float64 `yaml:"image_width" json:"image_width"`       // inches
	ImageHeight   float64 `yaml:"image_height" json:"image_height"`     // inches
	OutputPath    string  `yaml:"output_path" json:"output_path"`       // .png|.svg|.pdf
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat  string `yaml:"default_format" json:"default_format"`   // text|json|markdown|csv
	ColorMode      string `yaml:"color_mode" json:"color_mode"`           // auto|always|never
	Verbose        bool   `yaml:"verbose" json:"verbose"`                 // default verbosity
	Precision      int    `yaml:"precision" json:"precision"`             // decimals for values
	ShowComparison bool   `yaml:"show_comparison" json:"show_comparison"` // print reference values
	ShowTerms      bool   `yaml:"show_terms" json:"show_terms"`           // print the term trace
}

// UIConfig configures the interactive calculator
type UIConfig struct {
	Theme     string `yaml:"theme" json:"theme"`           // default|high-contrast|minimal
	ShowCurve bool   `yaml:"show_curve" json:"show_curve"` // draw the ASCII curve
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Series: SeriesConfig{
			DefaultAngle: "45",
			DefaultTerms: series.DefaultTerms,
			RadianMode:   false,
		},
		Plot: PlotConfig{
			SampleDensity: 5,
			CurveWidth:    600,
			ImageWidth:    8,
			ImageHeight:   3,
			OutputPath:    "taylor.png",
		},
		Output: OutputConfig{
			DefaultFormat:  "text",
			ColorMode:      "auto",
			Verbose:        false,
			Precision:      10,
			ShowComparison: true,
			ShowTerms:      false,
		},
		UI: UIConfig{
			Theme:     "default",
			ShowCurve: true,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateSeriesConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validatePlotConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

// validateSeriesConfig validates series-related configuration
func (c *Config) validateSeriesConfig() error {
	if err := series.ValidateTerms(c.Series.DefaultTerms); err != nil {
		return fmt.Errorf("default_terms: %w", err)
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17")
	}
	return nil
}

// validatePlotConfig validates sampling and image settings
func (c *Config) validatePlotConfig() error {
	if c.Plot.SampleDensity <= 0 {
		return fmt.Errorf("sample_density must be greater than 0")
	}
	if c.Plot.CurveWidth <= 0 {
		return fmt.Errorf("curve_width must be greater than 0")
	}
	if err := angle.ValidateSampling(c.Plot.SampleDensity, c.Plot.CurveWidth); err != nil {
		return fmt.Errorf("sample_density and curve_width: %w", err)
	}
	if c.Plot.ImageWidth <= 0 || c.Plot.ImageHeight <= 0 {
		return fmt.Errorf("image_width and image_height must be greater than 0")
	}
	return nil
}

// validateUIConfig validates interactive settings
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	return nil
}
