package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/emoji"
	"github.com/yildizm/TaylorSum/internal/logger"
	"github.com/yildizm/TaylorSum/internal/plot"
)

func newPlotCommand() *cobra.Command {
	var (
		flags    seriesFlags
		sampling samplerFlags
		outPath  string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "plot <angle>",
		Short: "Render sin and cos with the angle highlighted",
		Long: `Render sine and cosine over [-2π, 2π) with gridlines at multiples of π and
the given angle marked on the sine curve. The output format follows the file
extension: .png, .svg or .pdf.`,
		Example: `  taylorsum plot 45
  taylorsum plot --out curve.svg 210
  taylorsum plot --radians --out pi.pdf 3.14159`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()
			log := newLogger("plot")

			if outPath == "" {
				outPath = cfg.Plot.OutputPath
			}
			if _, err := plot.FormatFromPath(outPath); err != nil {
				return err
			}

			sampler, err := sampling.sampler(cmd)
			if err != nil {
				return err
			}
			s, err := flags.newSession(cmd, args[0])
			if err != nil {
				return err
			}
			if err := compute(s, log); err != nil {
				return err
			}
			curve, _ := s.Curve(sampler)

			opts := plot.DefaultOptions()
			opts.Width = cfg.Plot.ImageWidth
			opts.Height = cfg.Plot.ImageHeight
			if title != "" {
				opts.Title = title
			}

			done := log.Timed("render")
			if err := plot.Save(curve, opts, outPath); err != nil {
				return err
			}
			done()

			size := "unknown size"
			if info, err := os.Stat(outPath); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}
			log.InfoWithFields("plot written", []logger.Field{
				logger.F("path", outPath),
				logger.Count(len(curve.Samples)),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Plot saved to %s (%s)\n", emoji.GetEmoji("success"), outPath, size)
			return nil
		},
	}

	flags.register(cmd)
	sampling.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "output image path (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "plot title")

	return cmd
}
