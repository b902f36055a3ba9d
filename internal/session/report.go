package session

import (
	"time"

	"github.com/yildizm/TaylorSum/internal/reference"
	"github.com/yildizm/TaylorSum/internal/series"
)

// Report is a snapshot of one computation handed to formatters
type Report struct {
	AngleText  string                `json:"angle"`
	Mode       string                `json:"mode"`
	Unit       string                `json:"unit"`
	Terms      int                   `json:"terms"`
	Precision  int                   `json:"precision"`
	Comparison *reference.Comparison `json:"comparison,omitempty"`
	Trace      []series.Term         `json:"trace,omitempty"`
	Error      string                `json:"error,omitempty"`
	ComputedAt time.Time             `json:"computed_at,omitempty"`

	// ShowComparison controls whether text formatters print reference values
	ShowComparison bool `json:"-"`
}

// Report captures the current state. A stale session yields a report with no
// comparison; a failed Compute yields one carrying the error message.
func (s *Session) Report(withTrace bool) *Report {
	r := &Report{
		AngleText:      s.angleText,
		Mode:           s.mode.String(),
		Unit:           s.mode.Unit(),
		Terms:          s.terms,
		Precision:      s.precision,
		Error:          s.errMessage,
		ShowComparison: true,
	}

	if c, ok := s.Result(); ok {
		r.Comparison = c
		r.ComputedAt = s.computedAt
		if withTrace {
			r.Trace, _ = s.Trace()
		}
	}
	return r
}

// Failed reports whether the report carries an input error
func (r *Report) Failed() bool {
	return r.Error != ""
}
