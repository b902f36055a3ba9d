// Package session holds the calculator state shared by the CLI and the TUI.
// A Session has a single writer; it is not safe for concurrent use.
package session

import (
	"time"

	"github.com/yildizm/TaylorSum/internal/angle"
	"github.com/yildizm/TaylorSum/internal/reference"
	"github.com/yildizm/TaylorSum/internal/series"
)

// Defaults seeds a new session
type Defaults struct {
	AngleText  string
	RadianMode bool
	Terms      int
	Precision  int
}

// DefaultDefaults matches the calculator's start-up state
func DefaultDefaults() Defaults {
	return Defaults{
		AngleText:  "45",
		RadianMode: false,
		Terms:      series.DefaultTerms,
		Precision:  10,
	}
}

// Session is the calculator state: inputs, the parsed angle cached per
// edit, and the last computed result guarded by a staleness flag.
type Session struct {
	angleText string
	mode      angle.Mode
	terms     int
	precision int

	// parse cache, refreshed on every text edit
	value    float64
	parseErr error

	result     *reference.Comparison
	calculated bool
	errMessage string
	computedAt time.Time
}

// New creates a session from defaults
func New(d Defaults) *Session {
	if d.Precision <= 0 {
		d.Precision = DefaultDefaults().Precision
	}
	s := &Session{
		mode:      angle.ModeFromRadianFlag(d.RadianMode),
		terms:     series.ClampTerms(d.Terms),
		precision: d.Precision,
	}
	s.SetAngleText(d.AngleText)
	return s
}

// AngleText returns the raw angle text
func (s *Session) AngleText() string {
	return s.angleText
}

// Mode returns the current angle mode
func (s *Session) Mode() angle.Mode {
	return s.mode
}

// Terms returns the current term count
func (s *Session) Terms() int {
	return s.terms
}

// Precision returns the number of decimals used for display
func (s *Session) Precision() int {
	return s.precision
}

// SetAngleText replaces the angle text, re-parses it once and marks the
// result stale
func (s *Session) SetAngleText(text string) {
	s.angleText = text
	s.value, s.parseErr = angle.Parse(text)
	s.invalidate()
}

// SetRadianMode switches between degree and radian input
func (s *Session) SetRadianMode(radians bool) {
	mode := angle.ModeFromRadianFlag(radians)
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.invalidate()
}

// ToggleMode flips the angle mode
func (s *Session) ToggleMode() {
	s.SetRadianMode(s.mode != angle.Radians)
}

// SetTerms sets the term count, clamped to the supported range
func (s *Session) SetTerms(terms int) {
	terms = series.ClampTerms(terms)
	if terms == s.terms {
		return
	}
	s.terms = terms
	s.invalidate()
}

func (s *Session) invalidate() {
	s.calculated = false
}

// Radians returns the cached angle in radians and whether the text parsed
func (s *Session) Radians() (float64, bool) {
	if s.parseErr != nil {
		return 0, false
	}
	return angle.ToRadians(s.value, s.mode), true
}

// Compute evaluates the series for the current inputs. On invalid angle text
// the calculated state is cleared and an *angle.InputError is returned.
func (s *Session) Compute() (*reference.Comparison, error) {
	if s.parseErr != nil {
		s.result = nil
		s.calculated = false
		s.errMessage = angle.InvalidAngleMessage
		return nil, s.parseErr
	}

	x, _ := s.Radians()
	c := reference.Evaluate(x, s.terms)
	s.result = &c
	s.calculated = true
	s.errMessage = ""
	s.computedAt = time.Now()
	return s.result, nil
}

// Result returns the last computed result unless inputs changed since
func (s *Session) Result() (*reference.Comparison, bool) {
	if !s.calculated {
		return nil, false
	}
	return s.result, true
}

// Stale reports whether there is no up-to-date result
func (s *Session) Stale() bool {
	return !s.calculated
}

// Err returns the user-facing error message of the last Compute, if any
func (s *Session) Err() string {
	return s.errMessage
}

// ComputedAt returns when the current result was produced
func (s *Session) ComputedAt() time.Time {
	return s.computedAt
}

// Trace returns the term-by-term breakdown of the current result
func (s *Session) Trace() ([]series.Term, bool) {
	if !s.calculated {
		return nil, false
	}
	return series.Trace(s.result.Radians, s.terms), true
}

// Curve samples the plotting window and highlights the current angle
func (s *Session) Curve(sampler angle.Sampler) (angle.Curve, bool) {
	if !s.calculated {
		return angle.Curve{}, false
	}
	return sampler.Curve(s.result.Radians), true
}
