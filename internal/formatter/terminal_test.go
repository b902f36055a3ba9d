package formatter

import (
	"strings"
	"testing"

	"github.com/yildizm/TaylorSum/internal/session"
)

func computedReport(t *testing.T, text string, radians bool, terms int, withTrace bool) *session.Report {
	t.Helper()
	s := session.New(session.Defaults{AngleText: text, RadianMode: radians, Terms: terms, Precision: 10})
	if _, err := s.Compute(); err != nil {
		t.Fatalf("Compute(%q) failed: %v", text, err)
	}
	return s.Report(withTrace)
}

func failedReport(t *testing.T, text string) *session.Report {
	t.Helper()
	s := session.New(session.Defaults{AngleText: text, Terms: 10})
	if _, err := s.Compute(); err == nil {
		t.Fatalf("Compute(%q) should fail", text)
	}
	return s.Report(false)
}

func TestTerminalFormat(t *testing.T) {
	out, err := NewTerminal(false).Format(computedReport(t, "45", false, 10, false))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"Taylor Series Calculator",
		"45 °",
		"0.7853981634 rad",
		"degrees",
		"0.7071067812",
		"1.0000000000",
		"math",
		"Agreement",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Term Trace") {
		t.Error("trace should be omitted when not requested")
	}
}

func TestTerminalFormatHidesComparison(t *testing.T) {
	report := computedReport(t, "45", false, 10, false)
	report.ShowComparison = false

	out, err := NewTerminal(false).Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(string(out), "math") || strings.Contains(string(out), "Agreement") {
		t.Errorf("reference values should be hidden:\n%s", out)
	}
}

func TestTerminalFormatTrace(t *testing.T) {
	out, err := NewTerminal(false).Format(computedReport(t, "1", true, 4, true))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := string(out)

	if !strings.Contains(output, "Term Trace") {
		t.Fatalf("trace section missing:\n%s", output)
	}
	// n=1 sine term is -1/3!
	if !strings.Contains(output, "-0.1666666667") {
		t.Errorf("signed sine term missing:\n%s", output)
	}
	if !strings.Contains(output, "└─3") {
		t.Errorf("last trace row should close the tree:\n%s", output)
	}
}

func TestTerminalFormatGuardedTan(t *testing.T) {
	out, err := NewTerminal(false).Format(computedReport(t, "90", false, 15, false))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "+Inf") {
		t.Errorf("guarded tan should print +Inf:\n%s", out)
	}
	if !strings.Contains(string(out), "singularity") {
		t.Errorf("guarded tan should be noted:\n%s", out)
	}
}

func TestTerminalFormatStates(t *testing.T) {
	out, err := NewTerminal(false).Format(failedReport(t, "abc"))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "please enter a valid angle value") {
		t.Errorf("error message missing:\n%s", out)
	}
	if strings.Contains(string(out), "Series Results") {
		t.Error("failed report should not print results")
	}

	stale := session.New(session.DefaultDefaults()).Report(false)
	out, err = NewTerminal(false).Format(stale)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "press calculate") {
		t.Errorf("stale report should prompt for calculation:\n%s", out)
	}
}
