package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TaylorSum/internal/emoji"
	"github.com/yildizm/TaylorSum/internal/session"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *session.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeInput(&b, report)

	if report.Failed() {
		fmt.Fprintf(&b, "%s %s\n", emoji.GetEmoji("error"), report.Error)
		return []byte(b.String()), nil
	}
	if report.Comparison == nil {
		fmt.Fprintf(&b, "%s press calculate to evaluate the series\n", emoji.GetEmoji("info"))
		return []byte(b.String()), nil
	}

	f.writeResults(&b, report)
	if report.ShowComparison {
		f.writeAgreement(&b, report)
	}
	if len(report.Trace) > 0 {
		f.writeTrace(&b, report)
	}

	return []byte(b.String()), nil
}

// writeHeader writes the title box
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Taylor Series Calculator"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeInput writes the angle, mode and term count
func (f *terminalFormatter) writeInput(b *strings.Builder, report *session.Report) {
	b.WriteString(emoji.GetEmoji("angle") + " Input\n")

	angleValue := report.AngleText + " " + report.Unit
	if report.Comparison != nil {
		angleValue += fmt.Sprintf(" (%s rad)", FormatValue(report.Comparison.Radians, report.Precision))
	}

	items := []termfmt.TreeItem{
		{Label: "Angle", Value: angleValue},
		{Label: "Mode", Value: report.Mode},
		{Label: "Terms", Value: formatNumber(report.Terms), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeResults writes one tree node per function with reference and deviation children
func (f *terminalFormatter) writeResults(b *strings.Builder, report *session.Report) {
	b.WriteString(emoji.GetEmoji("sigma") + " Series Results\n")

	rows := functionRows(report.Comparison)
	items := make([]termfmt.TreeItem, 0, len(rows))
	for i, row := range rows {
		item := termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", getFunctionEmoji(row), row.Name),
			Value: FormatValue(row.Series, report.Precision),
			Last:  i == len(rows)-1,
		}
		if report.ShowComparison {
			item.Children = []termfmt.TreeItem{
				{Label: "math", Value: FormatValue(row.Reference, report.Precision)},
				{Label: "diff", Value: FormatDiff(row.Diff), Last: true},
			}
		}
		items = append(items, item)
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeAgreement writes a bar showing how many digits series and reference share
func (f *terminalFormatter) writeAgreement(b *strings.Builder, report *session.Report) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	if symbol == "" {
		symbol = emoji.GetEmoji("compare")
	}
	b.WriteString(symbol + " Agreement\n")

	maxDiff := report.Comparison.MaxDiff()
	bar := termfmt.CreateConfidenceBar(agreement(maxDiff), f.opts)
	items := []termfmt.TreeItem{
		{Label: "Max diff", Value: FormatDiff(maxDiff)},
		{Label: bar, Value: "", Last: true},
	}
	if report.Comparison.Guarded() {
		items[1].Last = false
		items = append(items, termfmt.TreeItem{Label: "Note", Value: "tan is at a singularity", Last: true})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeTrace writes the signed contribution of every term and the running sums
func (f *terminalFormatter) writeTrace(b *strings.Builder, report *session.Report) {
	b.WriteString(emoji.GetEmoji("trace") + " Term Trace\n")

	width := report.Precision + 8
	fmt.Fprintf(b, "%3s  %-*s %-*s %-*s %-*s\n", "n",
		width, "sin term", width, "sin sum", width, "cos term", width, "cos sum")
	for i, t := range report.Trace {
		branch := "├─"
		if i == len(report.Trace)-1 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s%-3d %-*s %-*s %-*s %-*s\n", branch, t.Index,
			width, FormatSigned(t.SinTerm, report.Precision),
			width, FormatValue(t.PartialSin, report.Precision),
			width, FormatSigned(t.CosTerm, report.Precision),
			width, FormatValue(t.PartialCos, report.Precision))
	}
	b.WriteString("\n")
}
