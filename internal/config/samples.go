package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# TaylorSum configuration
version: "1.0"

series:
  # Angle shown when the calculator starts
  default_angle: "45"
  # Number of series terms (1-50)
  default_terms: 10
  # Interpret angles as radians instead of degrees
  radian_mode: false

plot:
  # Samples per unit of curve width
  sample_density: 5
  # Width of the sampled curve in abstract units
  curve_width: 600
  # Rendered image size in inches
  image_width: 8
  image_height: 3
  # Default file for "taylorsum plot" (.png, .svg or .pdf)
  output_path: "taylor.png"

output:
  # text, json, markdown or csv
  default_format: "text"
  # auto, always or never
  color_mode: "auto"
  verbose: false
  # Decimals shown for series and reference values
  precision: 10
  show_comparison: true
  show_terms: false

ui:
  # default, high-contrast or minimal
  theme: "default"
  show_curve: true
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
series:
  default_terms: 10
output:
  default_format: "text"
`
}
