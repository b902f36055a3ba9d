package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/formatter"
	"github.com/yildizm/TaylorSum/internal/logger"
	"github.com/yildizm/TaylorSum/internal/session"
)

// batchResult holds the reports of one batch run
type batchResult struct {
	Reports []*session.Report
	Invalid int
}

func newBatchCommand() *cobra.Command {
	var (
		flags      seriesFlags
		outputFile string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Evaluate one angle per line",
		Long: `Evaluate every angle in a file (or stdin) and write a summary with one row
per line. Blank lines and lines starting with # are skipped. A line may end
with "deg" or "rad" to override the angle mode for that line. Invalid lines
are kept in the summary with the error in the last column.`,
		Example: `  taylorsum batch angles.txt
  printf '0\n90\n1.5708 rad\n' | taylorsum batch -
  taylorsum batch -o json --terms 20 angles.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := flags.newSession(cmd, "")
			if err != nil {
				return err
			}
			defaults := sessionDefaults(base)

			reader, source, cleanup, err := setupInputReader(cmd, args)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := evaluateBatch(reader, defaults, newLogger("batch").With(logger.F("source", source)))
			if err != nil {
				return err
			}

			output, err := formatBatch(result, getOutputFormat())
			if err != nil {
				return err
			}
			if err := handleOutputDestination(cmd, output, outputFile); err != nil {
				return err
			}

			if strict && result.Invalid > 0 {
				return fmt.Errorf("%d of %d lines are not valid angles", result.Invalid, len(result.Reports))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any line is invalid")

	return cmd
}

// sessionDefaults captures the inputs of s for per-line sessions
func sessionDefaults(s *session.Session) session.Defaults {
	return session.Defaults{
		AngleText:  s.AngleText(),
		RadianMode: s.Mode() == angle.Radians,
		Terms:      s.Terms(),
		Precision:  s.Precision(),
	}
}

// setupInputReader opens the named file, or stdin for "-" or no argument
func setupInputReader(cmd *cobra.Command, args []string) (reader io.Reader, source string, cleanup func(), err error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}

	filename := args[0]
	if err := validateFilePath(filename); err != nil {
		return nil, "", nil, fmt.Errorf("invalid input file: %w", err)
	}

	// #nosec G304 - path is validated by validateFilePath
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open file: %w", err)
	}

	cleanup = func() {
		if err := file.Close(); err != nil {
			newLogger("batch").Warn("failed to close %s: %v", filename, err)
		}
	}
	return file, filename, cleanup, nil
}

// evaluateBatch computes one report per angle line
func evaluateBatch(r io.Reader, defaults session.Defaults, log *logger.Logger) (*batchResult, error) {
	defer log.Timed("batch")()

	result := &batchResult{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text, radians, hasMode, ok := parseBatchLine(scanner.Text())
		if !ok {
			continue
		}

		d := defaults
		d.AngleText = text
		if hasMode {
			d.RadianMode = radians
		}

		s := session.New(d)
		if _, err := s.Compute(); err != nil {
			result.Invalid++
			log.DebugWithFields("invalid line", []logger.Field{logger.F("line", lineNo), logger.Error(err)})
		}
		result.Reports = append(result.Reports, s.Report(false))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	log.InfoWithFields("batch evaluated", []logger.Field{
		logger.Count(len(result.Reports)),
		logger.F("invalid", result.Invalid),
	})
	return result, nil
}

// parseBatchLine returns the angle text of a line and an optional mode
// suffix; ok is false for blank and comment lines
func parseBatchLine(line string) (text string, radians, hasMode, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false, false, false
	}

	fields := strings.Fields(line)
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "deg", "degree", "degrees", "°":
			return fields[0], false, true, true
		case "rad", "radian", "radians":
			return fields[0], true, true, true
		}
	}
	return line, false, false, true
}

// formatBatch encodes a batch as a JSON array or a summary CSV
func formatBatch(result *batchResult, format string) ([]byte, error) {
	var (
		output []byte
		err    error
	)
	switch format {
	case "json":
		output, err = formatter.BatchJSON(result.Reports)
	case "csv", "text", "":
		output, err = formatter.SummaryCSV(result.Reports)
	default:
		return nil, fmt.Errorf("batch supports csv and json output, not %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to format batch: %w", err)
	}
	return output, nil
}
