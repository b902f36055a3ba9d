package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/ui"
)

func newTUICommand() *cobra.Command {
	var (
		flags seriesFlags
		theme string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Start a terminal calculator. Type an angle, switch between degrees and
radians with tab, change the number of terms with the arrow keys and press
enter to evaluate. ctrl+t shows the term trace, ctrl+o toggles the reference
comparison and ctrl+g the curve. Press f1 for help and esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()

			if theme == "" {
				theme = cfg.UI.Theme
			}
			if theme != "" && !ui.SetThemeByName(theme) {
				return fmt.Errorf("unknown theme: %s (available: %v)", theme, ui.GetAvailableThemes())
			}

			ui.SetColorDisabled(!isColorEnabled())

			s, err := flags.newSession(cmd, "")
			if err != nil {
				return err
			}

			return ui.Run(s, ui.Options{
				ShowComparison: cfg.Output.ShowComparison,
				ShowTrace:      cfg.Output.ShowTerms,
				ShowCurve:      cfg.UI.ShowCurve,
				Sampler:        angle.NewSampler(cfg.Plot.SampleDensity, cfg.Plot.CurveWidth),
				Logger:         newLogger("ui"),
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&theme, "theme", "", "color theme (default, high-contrast, minimal)")

	return cmd
}
