package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/TaylorSum/internal/session"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) Format(report *session.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Taylor Series Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	f.writeInputTable(&b, report)

	switch {
	case report.Failed():
		fmt.Fprintf(&b, "> **Error**: %s\n\n", report.Error)
	case report.Comparison != nil:
		f.writeResultsTable(&b, report)
		if len(report.Trace) > 0 {
			f.writeTraceTable(&b, report)
		}
	}

	f.writeAbout(&b)
	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeInputTable(b *strings.Builder, report *session.Report) {
	b.WriteString("## Input\n\n")
	b.WriteString("| Setting | Value |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(b, "| Angle | %s %s |\n", report.AngleText, report.Unit)
	if report.Comparison != nil {
		fmt.Fprintf(b, "| Radians | %s |\n", FormatValue(report.Comparison.Radians, report.Precision))
	}
	fmt.Fprintf(b, "| Mode | %s |\n", report.Mode)
	fmt.Fprintf(b, "| Terms | %s |\n\n", formatNumber(report.Terms))
}

func (f *markdownFormatter) writeResultsTable(b *strings.Builder, report *session.Report) {
	b.WriteString("## Results\n\n")

	if !report.ShowComparison {
		b.WriteString("| Function | Series |\n")
		b.WriteString("|----------|--------|\n")
		for _, row := range functionRows(report.Comparison) {
			fmt.Fprintf(b, "| %s | %s |\n", row.Name, FormatValue(row.Series, report.Precision))
		}
		b.WriteString("\n")
		return
	}

	b.WriteString("| Function | Series | math | Diff |\n")
	b.WriteString("|----------|--------|------|------|\n")
	for _, row := range functionRows(report.Comparison) {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", row.Name,
			FormatValue(row.Series, report.Precision),
			FormatValue(row.Reference, report.Precision),
			FormatDiff(row.Diff))
	}
	fmt.Fprintf(b, "\n**Max diff**: %s\n\n", FormatDiff(report.Comparison.MaxDiff()))
	if report.Comparison.Guarded() {
		b.WriteString("*The cosine sum is within 1e-10 of zero, so tan is reported as infinite.*\n\n")
	}
}

func (f *markdownFormatter) writeTraceTable(b *strings.Builder, report *session.Report) {
	b.WriteString("## Term Trace\n\n")
	b.WriteString("| n | sin term | sin sum | cos term | cos sum |\n")
	b.WriteString("|---|----------|---------|----------|---------|\n")
	for _, t := range report.Trace {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n", t.Index,
			FormatSigned(t.SinTerm, report.Precision),
			FormatValue(t.PartialSin, report.Precision),
			FormatSigned(t.CosTerm, report.Precision),
			FormatValue(t.PartialCos, report.Precision))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeAbout(b *strings.Builder) {
	b.WriteString("## About\n\n")
	b.WriteString("```\n" + AboutText + "\n```\n\n")
	b.WriteString("---\n")
	b.WriteString("*Report generated by TaylorSum*\n")
}
