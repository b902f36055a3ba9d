package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/logger"
	"github.com/yildizm/TaylorSum/internal/series"
	"github.com/yildizm/TaylorSum/internal/session"
)

// seriesFlags are the calculator inputs shared by several commands
type seriesFlags struct {
	radians bool
	terms   int
}

func (f *seriesFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.radians, "radians", "r", false, "interpret the angle as radians (default from config: degrees)")
	cmd.Flags().IntVarP(&f.terms, "terms", "n", 0, fmt.Sprintf("number of series terms, %d-%d (default from config)", series.MinTerms, series.MaxTerms))
}

// newSession builds a session from config defaults overridden by set flags
func (f *seriesFlags) newSession(cmd *cobra.Command, angleText string) (*session.Session, error) {
	cfg := GetGlobalConfig()

	d := session.Defaults{
		AngleText:  cfg.Series.DefaultAngle,
		RadianMode: cfg.Series.RadianMode,
		Terms:      cfg.Series.DefaultTerms,
		Precision:  getPrecision(),
	}
	if angleText != "" {
		d.AngleText = angleText
	}
	if cmd.Flags().Changed("radians") {
		d.RadianMode = f.radians
	}
	if cmd.Flags().Changed("terms") {
		if err := series.ValidateTerms(f.terms); err != nil {
			return nil, err
		}
		d.Terms = f.terms
	}
	return session.New(d), nil
}

// compute runs the session and logs the outcome
func compute(s *session.Session, log *logger.Logger) error {
	defer log.Timed("evaluate")()

	c, err := s.Compute()
	if err != nil {
		log.DebugWithFields("invalid angle", []logger.Field{logger.F("text", s.AngleText()), logger.Error(err)})
		return err
	}
	log.DebugWithFields("evaluated series", []logger.Field{
		logger.Radians(c.Radians),
		logger.Terms(c.Terms),
		logger.F("max_diff", c.MaxDiff()),
	})
	return nil
}

func newCalcCommand() *cobra.Command {
	var (
		flags      seriesFlags
		withTrace  bool
		noCompare  bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "calc <angle>",
		Short: "Evaluate sin, cos and tan of an angle",
		Long: `Evaluate the Taylor series of sine and cosine for an angle and derive the
tangent from them. Results are compared with the math library unless
--no-compare is given.

Negative angles must follow "--" so they are not read as flags.`,
		Example: `  taylorsum calc 45
  taylorsum calc --radians --terms 20 1.2
  taylorsum calc --trace -o markdown 90
  taylorsum calc -- -30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()
			s, err := flags.newSession(cmd, args[0])
			if err != nil {
				return err
			}

			computeErr := compute(s, newLogger("calc"))
			if computeErr != nil && !errors.Is(computeErr, angle.ErrInvalidAngle) {
				return computeErr
			}

			report := s.Report(withTrace || cfg.Output.ShowTerms)
			report.ShowComparison = cfg.Output.ShowComparison && !noCompare
			if err := outputReport(cmd, report, outputFile); err != nil {
				return err
			}
			return computeErr
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&withTrace, "trace", "t", false, "include the term-by-term trace")
	cmd.Flags().BoolVar(&noCompare, "no-compare", false, "hide reference values and deviations")
	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")

	return cmd
}

func newTraceCommand() *cobra.Command {
	var (
		flags      seriesFlags
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "trace <angle>",
		Short: "Show every term of the series and the running sums",
		Long: `Print the signed contribution of each series term together with the
partial sums of sine and cosine. With -o csv the trace is written as one
row per term.`,
		Example: `  taylorsum trace 45
  taylorsum trace -n 8 -o csv 180`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd, args[0])
			if err != nil {
				return err
			}

			computeErr := compute(s, newLogger("trace"))
			if computeErr != nil && !errors.Is(computeErr, angle.ErrInvalidAngle) {
				return computeErr
			}

			report := s.Report(true)
			report.ShowComparison = false
			if err := outputReport(cmd, report, outputFile); err != nil {
				return err
			}
			return computeErr
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")

	return cmd
}
