package formatter

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/yildizm/TaylorSum/internal/series"
	"github.com/yildizm/TaylorSum/internal/session"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *session.Report) ([]byte, error) {
	return json.MarshalIndent(createJSONOutput(report), "", "  ")
}

// Float is a float64 that encodes infinities and NaN as the strings
// "+Inf", "-Inf" and "NaN"
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"+Inf"`:
		*f = Float(math.Inf(1))
		return nil
	case `"-Inf"`:
		*f = Float(math.Inf(-1))
		return nil
	case `"NaN"`:
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Input      JSONInput    `json:"input"`
	Results    []JSONResult `json:"results,omitempty"`
	MaxDiff    *Float       `json:"max_diff,omitempty"`
	Trace      []JSONTerm   `json:"trace,omitempty"`
	Error      string       `json:"error,omitempty"`
	ComputedAt *time.Time   `json:"computed_at,omitempty"`
}

// JSONInput echoes the calculator inputs
type JSONInput struct {
	Angle   string `json:"angle"`
	Mode    string `json:"mode"`
	Terms   int    `json:"terms"`
	Radians *Float `json:"radians,omitempty"`
}

// JSONResult is one function's series value against the reference
type JSONResult struct {
	Function  string `json:"function"`
	Series    Float  `json:"series"`
	Reference Float  `json:"reference"`
	Diff      Float  `json:"diff"`
}

// JSONTerm is one row of the term trace
type JSONTerm struct {
	Index      int   `json:"n"`
	SinPower   int   `json:"sin_power"`
	CosPower   int   `json:"cos_power"`
	SinTerm    Float `json:"sin_term"`
	CosTerm    Float `json:"cos_term"`
	PartialSin Float `json:"partial_sin"`
	PartialCos Float `json:"partial_cos"`
}

func createJSONOutput(report *session.Report) *JSONOutput {
	output := &JSONOutput{
		Input: JSONInput{
			Angle: report.AngleText,
			Mode:  report.Mode,
			Terms: report.Terms,
		},
		Error: report.Error,
	}

	if c := report.Comparison; c != nil {
		radians := Float(c.Radians)
		maxDiff := Float(c.MaxDiff())
		computedAt := report.ComputedAt
		output.Input.Radians = &radians
		output.MaxDiff = &maxDiff
		output.ComputedAt = &computedAt

		for _, row := range functionRows(c) {
			output.Results = append(output.Results, JSONResult{
				Function:  row.Name,
				Series:    Float(row.Series),
				Reference: Float(row.Reference),
				Diff:      Float(row.Diff),
			})
		}
	}

	output.Trace = createJSONTrace(report.Trace)
	return output
}

func createJSONTrace(trace []series.Term) []JSONTerm {
	if len(trace) == 0 {
		return nil
	}
	terms := make([]JSONTerm, 0, len(trace))
	for _, t := range trace {
		terms = append(terms, JSONTerm{
			Index:      t.Index,
			SinPower:   t.SinPower,
			CosPower:   t.CosPower,
			SinTerm:    Float(t.SinTerm),
			CosTerm:    Float(t.CosTerm),
			PartialSin: Float(t.PartialSin),
			PartialCos: Float(t.PartialCos),
		})
	}
	return terms
}

// BatchJSON encodes one JSON document per report as an array
func BatchJSON(reports []*session.Report) ([]byte, error) {
	outputs := make([]*JSONOutput, 0, len(reports))
	for _, r := range reports {
		outputs = append(outputs, createJSONOutput(r))
	}
	return json.MarshalIndent(outputs, "", "  ")
}
