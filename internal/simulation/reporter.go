package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateConsoleReport formats a run result for terminal output
func GenerateConsoleReport(result *Result) string {
	var builder strings.Builder
	builder.WriteString("Prop Simulation Report\n")
	builder.WriteString("=======================\n")
	if result.Projection.FloorTriggered {
		builder.WriteString(fmt.Sprintf("Projected Points: %.2f (Floor Applied)\n", result.Projection.Floored))
	} else {
		builder.WriteString(fmt.Sprintf("Projected Points: %.2f\n", result.Projection.Floored))
	}
	builder.WriteString(fmt.Sprintf("Standard Deviation: ±%.2f points\n", result.Posterior.StdDev))
	builder.WriteString(fmt.Sprintf("Probability of Hitting Over %.1f Points: %.2f%%\n", result.Inputs.Line, result.Analysis.ProbabilityOver*100))
	builder.WriteString(fmt.Sprintf("Expected Value (EV): %.2f\n", result.Analysis.ExpectedValue))
	builder.WriteString(fmt.Sprintf("Edge vs Line: %.2f%%\n", result.Analysis.EdgePercentage))
	builder.WriteString(fmt.Sprintf("Bet Recommendation: %s\n", result.Analysis.Recommendation.Display()))
	if !result.Analysis.SuggestedStake.IsZero() {
		builder.WriteString(fmt.Sprintf("Suggested Stake: %s (%.1f%% Kelly)\n", result.Analysis.SuggestedStake.StringFixed(2), result.Analysis.KellyFraction*100))
	}
	return builder.String()
}

// ExportJSON writes the full result record for downstream consumers.
// Samples are stripped; the histogram carries the distribution shape.
func ExportJSON(result *Result, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	export := *result
	export.Samples = nil

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}
