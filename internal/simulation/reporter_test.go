package simulation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateConsoleReport(t *testing.T) {
	engine := newTestEngine(t, 42)
	result, err := engine.Run(context.Background(), scenarioInputs())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	report := GenerateConsoleReport(result)
	for _, want := range []string{"Projected Points", "Probability of Hitting Over", "Expected Value", "Bet Recommendation"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestExportJSONStripsSamples(t *testing.T) {
	engine := newTestEngine(t, 42)
	result, err := engine.Run(context.Background(), scenarioInputs())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "result.json")
	if err := ExportJSON(result, path); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded.Samples) != 0 {
		t.Errorf("export should not carry raw samples, got %d", len(decoded.Samples))
	}
	if decoded.Analysis.ProbabilityOver != result.Analysis.ProbabilityOver {
		t.Errorf("export probability %v differs from result %v",
			decoded.Analysis.ProbabilityOver, result.Analysis.ProbabilityOver)
	}
	if len(decoded.Histogram.Counts) != 30 {
		t.Errorf("expected 30 histogram bins in export, got %d", len(decoded.Histogram.Counts))
	}
}
