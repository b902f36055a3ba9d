package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/TaylorSum/internal/session"
)

// csvFormatter writes the term trace when the report carries one and the
// function comparison table otherwise
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *session.Report) ([]byte, error) {
	if report.Failed() {
		return nil, fmt.Errorf("%s: %s", report.AngleText, report.Error)
	}
	if report.Comparison == nil {
		return nil, fmt.Errorf("no result to format")
	}

	var records [][]string
	if len(report.Trace) > 0 {
		records = traceRecords(report)
	} else {
		records = comparisonRecords(report)
	}
	return writeCSV(records)
}

func traceRecords(report *session.Report) [][]string {
	records := [][]string{{"n", "sin_power", "sin_term", "partial_sin", "cos_power", "cos_term", "partial_cos"}}
	for _, t := range report.Trace {
		records = append(records, []string{
			strconv.Itoa(t.Index),
			strconv.Itoa(t.SinPower),
			csvFloat(t.SinTerm),
			csvFloat(t.PartialSin),
			strconv.Itoa(t.CosPower),
			csvFloat(t.CosTerm),
			csvFloat(t.PartialCos),
		})
	}
	return records
}

func comparisonRecords(report *session.Report) [][]string {
	records := [][]string{{"function", "series", "reference", "diff"}}
	for _, row := range functionRows(report.Comparison) {
		records = append(records, []string{
			row.Name,
			csvFloat(row.Series),
			csvFloat(row.Reference),
			csvFloat(row.Diff),
		})
	}
	return records
}

// SummaryHeader is the column layout of SummaryCSV
var SummaryHeader = []string{
	"angle", "mode", "terms", "radians",
	"sin", "cos", "tan",
	"ref_sin", "ref_cos", "ref_tan",
	"max_diff", "error",
}

// SummaryCSV writes one row per report. Failed reports keep their inputs and
// carry the message in the error column.
func SummaryCSV(reports []*session.Report) ([]byte, error) {
	records := make([][]string, 0, len(reports)+1)
	records = append(records, SummaryHeader)

	for _, r := range reports {
		record := []string{r.AngleText, r.Mode, strconv.Itoa(r.Terms)}
		if c := r.Comparison; c != nil {
			record = append(record,
				csvFloat(c.Radians),
				csvFloat(c.Series.Sin), csvFloat(c.Series.Cos), csvFloat(c.Series.Tan),
				csvFloat(c.Reference.Sin), csvFloat(c.Reference.Cos), csvFloat(c.Reference.Tan),
				csvFloat(c.MaxDiff()),
				"",
			)
		} else {
			record = append(record, "", "", "", "", "", "", "", "", r.Error)
		}
		records = append(records, record)
	}

	return writeCSV(records)
}

func writeCSV(records [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV records: %w", err)
	}
	return b.Bytes(), nil
}

// csvFloat uses the shortest representation that round-trips
func csvFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
