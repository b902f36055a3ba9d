package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/TaylorSum/internal/angle"
)

func TestCurveCSV(t *testing.T) {
	curve := angle.NewSampler(1, 10).Curve(angle.FromDegrees(90))

	out, err := CurveCSV(curve, true)
	if err != nil {
		t.Fatalf("CurveCSV failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	if len(records) != 12 {
		t.Fatalf("expected header, 10 samples and a marker, got %d rows", len(records))
	}
	if records[1][0] != "sample" || records[1][1] != "0" {
		t.Errorf("first sample = %v", records[1])
	}
	last := records[11]
	if last[0] != "marker" || last[3] != "1" {
		t.Errorf("marker row = %v", last)
	}

	out, err = CurveCSV(curve, false)
	if err != nil {
		t.Fatalf("CurveCSV failed: %v", err)
	}
	if strings.Contains(string(out), "marker") {
		t.Error("marker row should be omitted")
	}
}

func TestCurveJSON(t *testing.T) {
	curve := angle.NewSampler(1, 20).Curve(angle.FromDegrees(450))

	out, err := CurveJSON(curve, true)
	if err != nil {
		t.Fatalf("CurveJSON failed: %v", err)
	}

	var decoded CurveOutput
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Count != 20 || len(decoded.Samples) != 20 || decoded.Width != 20 {
		t.Errorf("unexpected curve: count=%d samples=%d width=%v", decoded.Count, len(decoded.Samples), decoded.Width)
	}
	if decoded.Marker == nil || decoded.Marker.Degrees != 450 {
		t.Errorf("unexpected marker: %+v", decoded.Marker)
	}
}

func TestBatchJSON(t *testing.T) {
	out, err := BatchJSON(nil)
	if err != nil {
		t.Fatalf("BatchJSON failed: %v", err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Errorf("empty batch = %s", out)
	}
}
