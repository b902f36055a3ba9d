package ui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/emoji"
	"github.com/yildizm/TaylorSum/internal/formatter"
	"github.com/yildizm/TaylorSum/internal/logger"
	"github.com/yildizm/TaylorSum/internal/series"
	"github.com/yildizm/TaylorSum/internal/session"
	"github.com/yildizm/TaylorSum/internal/ui/components"
)

const (
	curveRows      = 11
	minCurveCols   = 20
	maxCurveCols   = 100
	agreementWidth = 30
	// maxAngleLen bounds the angle text field
	maxAngleLen = 32
)

// Options configures the calculator view
type Options struct {
	ShowComparison bool
	ShowTrace      bool
	ShowCurve      bool
	Sampler        angle.Sampler
	Logger         *logger.Logger
}

// CalculatorModel is the interactive calculator. It is the only writer to
// its session.
type CalculatorModel struct {
	session *session.Session
	sampler angle.Sampler
	styles  *Styles
	log     *logger.Logger

	width  int
	height int

	showComparison bool
	showTrace      bool
	showCurve      bool
	showHelp       bool
	quitting       bool

	status   string
	statusID int
}

// NewCalculatorModel creates a calculator over s
func NewCalculatorModel(s *session.Session, opts Options) *CalculatorModel {
	log := opts.Logger
	if log == nil {
		log = logger.NewWithCallback("ui", func() bool { return false })
	}
	sampler := opts.Sampler
	if sampler.Width <= 0 {
		sampler = angle.NewSampler(angle.DefaultDensity, angle.DefaultWidth)
	}
	return &CalculatorModel{
		session:        s,
		sampler:        sampler,
		styles:         GetStyles(),
		log:            log,
		width:          80,
		showComparison: opts.ShowComparison,
		showTrace:      opts.ShowTrace,
		showCurve:      opts.ShowCurve,
	}
}

// Init implements tea.Model
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	}
	return m, nil
}

func (m *CalculatorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc", "f1", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		return m.calculate()
	case "tab":
		m.session.ToggleMode()
	case "up", "right":
		m.session.SetTerms(m.session.Terms() + 1)
	case "down", "left":
		m.session.SetTerms(m.session.Terms() - 1)
	case "pgup":
		m.session.SetTerms(m.session.Terms() + 5)
	case "pgdown":
		m.session.SetTerms(m.session.Terms() - 5)
	case "backspace":
		text := []rune(m.session.AngleText())
		if len(text) > 0 {
			m.session.SetAngleText(string(text[:len(text)-1]))
		}
	case "ctrl+u":
		m.session.SetAngleText("")
	case "ctrl+t":
		m.showTrace = !m.showTrace
	case "ctrl+o":
		m.showComparison = !m.showComparison
	case "ctrl+g":
		m.showCurve = !m.showCurve
	case "f1":
		m.showHelp = true
	default:
		if msg.Type == tea.KeyRunes {
			m.appendRunes(msg.Runes)
		}
	}
	return m, nil
}

func (m *CalculatorModel) appendRunes(runes []rune) {
	text := []rune(m.session.AngleText())
	for _, r := range runes {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || len(text) >= maxAngleLen {
			continue
		}
		text = append(text, r)
	}
	m.session.SetAngleText(string(text))
}

func (m *CalculatorModel) calculate() (tea.Model, tea.Cmd) {
	defer m.log.Timed("calculate")()

	c, err := m.session.Compute()
	m.statusID++
	if err != nil {
		m.log.DebugWithFields("rejected angle", []logger.Field{logger.F("text", m.session.AngleText()), logger.Error(err)})
		m.status = ""
		return m, nil
	}

	m.log.DebugWithFields("calculated", []logger.Field{logger.Radians(c.Radians), logger.Terms(c.Terms)})
	m.status = fmt.Sprintf("%s calculated with %d terms", emoji.GetEmoji("success"), c.Terms)
	return m, clearStatusAfter(m.statusID, statusTimeout)
}

// View renders the calculator
func (m *CalculatorModel) View() string {
	if m.quitting {
		return "Thanks for using TaylorSum!\n"
	}
	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		render(m.styles.Title, emoji.GetEmoji("sigma")+" TaylorSum"),
		m.renderInputs(),
	}

	if msg := m.session.Err(); msg != "" {
		sections = append(sections, render(m.styles.Error, emoji.GetEmoji("error")+" "+msg))
	}

	c, ok := m.session.Result()
	switch {
	case ok:
		sections = append(sections, m.renderResults())
		if m.showTrace {
			sections = append(sections, m.renderTrace())
		}
		if m.showCurve {
			if curve, ok := m.session.Curve(m.sampler); ok {
				sections = append(sections, m.renderCurvePanel(curve, c.Radians))
			}
		}
	case m.session.Err() == "":
		sections = append(sections, render(m.styles.Muted, "Press enter to calculate"))
	}

	if m.status != "" {
		sections = append(sections, render(m.styles.Success, m.status))
	}
	sections = append(sections, m.renderKeyHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *CalculatorModel) renderInputs() string {
	s := m.session
	field := render(m.styles.Input, s.AngleText()+"▏")

	lines := []string{
		fmt.Sprintf("%s Angle  %s %s", emoji.GetEmoji("angle"), field, s.Mode().Unit()),
		fmt.Sprintf("   Mode   %s", s.Mode()),
		fmt.Sprintf("%s Terms  ◀ %d ▶  (%d-%d)", emoji.GetEmoji("terms"), s.Terms(), series.MinTerms, series.MaxTerms),
	}
	return strings.Join(lines, "\n")
}

func (m *CalculatorModel) renderResults() string {
	c, _ := m.session.Result()
	p := m.session.Precision()

	var b strings.Builder
	b.WriteString(render(m.styles.Header, "Results") + "\n")
	if m.showComparison {
		fmt.Fprintf(&b, "%-4s %-*s %-*s %s\n", "", p+4, "series", p+4, "math", "diff")
	}

	rows := []struct {
		name             string
		approx, ref, dev float64
	}{
		{"sin", c.Series.Sin, c.Reference.Sin, c.Diff.Sin},
		{"cos", c.Series.Cos, c.Reference.Cos, c.Diff.Cos},
		{"tan", c.Series.Tan, c.Reference.Tan, c.Diff.Tan},
	}
	for _, r := range rows {
		if m.showComparison {
			fmt.Fprintf(&b, "%-4s %-*s %-*s %s\n", r.name,
				p+4, formatter.FormatValue(r.approx, p),
				p+4, formatter.FormatValue(r.ref, p),
				formatter.FormatDiff(r.dev))
		} else {
			fmt.Fprintf(&b, "%-4s %s\n", r.name, formatter.FormatValue(r.approx, p))
		}
	}
	if m.showComparison {
		meter := components.NewAgreementMeter(agreementWidth)
		meter.Label = "agree"
		meter.Plain = IsColorDisabled()
		meter.SetDeviation(c.MaxDiff())
		b.WriteString(meter.Render() + "\n")
	}
	if c.Guarded() {
		b.WriteString(render(m.styles.Warning, emoji.GetEmoji("warning")+" cos is within 1e-10 of zero"))
	}

	return render(m.styles.Panel, strings.TrimRight(b.String(), "\n"))
}

func (m *CalculatorModel) renderTrace() string {
	trace, ok := m.session.Trace()
	if !ok {
		return ""
	}
	p := m.session.Precision()

	var b strings.Builder
	b.WriteString(render(m.styles.Header, emoji.GetEmoji("trace")+" Term Trace") + "\n")
	w := p + 8
	fmt.Fprintf(&b, "%3s  %-*s %-*s %-*s %-*s\n", "n", w, "sin term", w, "sin sum", w, "cos term", w, "cos sum")
	for _, t := range trace {
		fmt.Fprintf(&b, "%3d  %-*s %-*s %-*s %-*s\n", t.Index,
			w, formatter.FormatSigned(t.SinTerm, p),
			w, formatter.FormatValue(t.PartialSin, p),
			w, formatter.FormatSigned(t.CosTerm, p),
			w, formatter.FormatValue(t.PartialCos, p))
	}
	return render(m.styles.Panel, strings.TrimRight(b.String(), "\n"))
}

func (m *CalculatorModel) renderCurvePanel(curve angle.Curve, x float64) string {
	cols := m.width - 4
	if cols > maxCurveCols {
		cols = maxCurveCols
	}
	if cols < minCurveCols {
		cols = minCurveCols
	}

	legend := fmt.Sprintf("%s sin  %s cos  %s x = %d° (wrapped %.4f rad)",
		render(m.styles.Sine, string(sineRune)),
		render(m.styles.Cosine, string(cosineRune)),
		render(m.styles.Marker, string(markerRune)),
		curve.Marker.Degrees, angle.Wrap(x))

	return render(m.styles.Panel, renderCurve(curve, cols, curveRows, m.styles)+legend)
}

func (m *CalculatorModel) renderKeyHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "calculate"},
		{"tab", "deg/rad"},
		{"↑/↓", "terms"},
		{"ctrl+t", "trace"},
		{"ctrl+o", "compare"},
		{"ctrl+g", "curve"},
		{"f1", "help"},
		{"esc", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, render(m.styles.Key, k.key)+" "+render(m.styles.Muted, k.desc))
	}
	return strings.Join(parts, "  ")
}

func (m *CalculatorModel) renderHelp() string {
	var b strings.Builder
	b.WriteString(render(m.styles.Title, emoji.GetEmoji("help")+" About the Taylor series") + "\n\n")
	b.WriteString(formatter.AboutText + "\n\n")
	b.WriteString(render(m.styles.Muted, "Type an angle, pick the unit with tab and the number of terms with the arrow keys, then press enter.") + "\n\n")
	b.WriteString(render(m.styles.Key, "esc") + " " + render(m.styles.Muted, "back"))
	return render(m.styles.Panel, b.String())
}

// Run starts the interactive calculator
func Run(s *session.Session, opts Options) error {
	p := tea.NewProgram(NewCalculatorModel(s, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
