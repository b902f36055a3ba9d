package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/config"
	"github.com/yildizm/TaylorSum/internal/emoji"
	"github.com/yildizm/TaylorSum/internal/logger"
)

// skipConfigAnnotation marks commands that load configuration themselves
const skipConfigAnnotation = "skip-config"

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	precision int

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	globalConfig = config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "taylorsum",
		Short: "Taylor series calculator for sin, cos and tan",
		Long: `TaylorSum approximates sine, cosine and tangent with truncated Taylor
series and compares the result against the math library.

It can print term-by-term traces, sample the curves over [-2π, 2π) for
plotting, render them to PNG, SVG or PDF, process files of angles in batch
and run as an interactive terminal calculator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return loadGlobalConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 10, "decimals shown for values (1-17)")

	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newTraceCommand())
	rootCmd.AddCommand(newSampleCommand())
	rootCmd.AddCommand(newPlotCommand())
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads configuration and lets explicitly set flags win
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("output") && cfg.Output.DefaultFormat != "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if !flags.Changed("precision") {
		precision = cfg.Output.Precision
	} else if precision < 1 || precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", precision)
	}
	if !flags.Changed("verbose") {
		verbose = cfg.Output.Verbose
	}
	if !flags.Changed("no-color") {
		noColor = cfg.Output.ColorMode == "never"
	}

	globalConfig = cfg
	newLogger("config").DebugWithFields("configuration loaded", []logger.Field{
		logger.F("path", cfgFile),
		logger.F("format", outputFmt),
		logger.F("precision", precision),
	})
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TaylorSum %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers

// GetGlobalConfig returns the configuration loaded for the running command
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func getPrecision() int {
	return precision
}

func isColorEnabled() bool {
	return !noColor && GetGlobalConfig().Output.ColorMode != "never"
}

// newLogger creates a component logger that follows --verbose
func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
