package evals

import (
	"strings"
	"testing"

	"github.com/solanatracker/solana-data-mcp-server/tools"
)

// scriptedSelector maps inputs to fixed answers, standing in for an LLM
type scriptedSelector struct {
	answers map[string]string
	args    map[string]map[string]any
}

func (s *scriptedSelector) SelectTool(input string) (string, map[string]any, error) {
	tool := s.answers[input]
	return tool, s.args[input], nil
}

func catalogNames() map[string]bool {
	names := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		names[spec.Name] = true
	}
	return names
}

func TestLoadAll(t *testing.T) {
	selection, confusion, err := LoadAll("testdata")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(selection.Tests) == 0 {
		t.Error("selection suite is empty")
	}
	if len(confusion.Pairs) == 0 {
		t.Error("confusion suite is empty")
	}
}

// The shipped suites must only reference tools the server registers.
func TestShippedSuitesMatchCatalog(t *testing.T) {
	selection, confusion, err := LoadAll("testdata")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if err := Validate(selection, confusion, catalogNames()); err != nil {
		t.Errorf("shipped suites reference unknown tools: %v", err)
	}
}

func TestValidateRejectsUnknownTool(t *testing.T) {
	suite := &SelectionSuite{
		Tests: []SelectionTest{
			{ID: "bad-1", Input: "x", ExpectedTool: "get_token_sentiment"},
		},
	}
	err := Validate(suite, nil, catalogNames())
	if err == nil {
		t.Fatal("expected validation error for unknown tool")
	}
	if !strings.Contains(err.Error(), "get_token_sentiment") {
		t.Errorf("error should name the unknown tool, got: %v", err)
	}
}

func TestEvaluateSelection(t *testing.T) {
	suite := &SelectionSuite{
		Tests: []SelectionTest{
			{
				ID: "t1", Category: "price",
				Input:        "price of SOL",
				ExpectedTool: "get_token_price",
				ExpectedArgs: map[string]any{"token": "SOL_MINT"},
			},
			{
				ID: "t2", Category: "price",
				Input:        "price of SOL last week",
				ExpectedTool: "get_price_history",
				NotTools:     []string{"get_token_price"},
			},
			{
				ID: "t3", Category: "token",
				Input:        "info on mint ABC",
				ExpectedTool: "get_token_information",
			},
		},
	}

	selector := &scriptedSelector{
		answers: map[string]string{
			"price of SOL":           "get_token_price",
			"price of SOL last week": "get_token_price", // wrong, and forbidden
			"info on mint ABC":       "get_token_information",
		},
		args: map[string]map[string]any{
			"price of SOL": {"token": "SOL_MINT"},
		},
	}

	metrics := EvaluateSelection(suite, selector)

	if metrics.TotalTests != 3 {
		t.Errorf("TotalTests = %d, want 3", metrics.TotalTests)
	}
	if metrics.PassedTests != 2 {
		t.Errorf("PassedTests = %d, want 2", metrics.PassedTests)
	}
	if metrics.FailedTests != 1 {
		t.Errorf("FailedTests = %d, want 1", metrics.FailedTests)
	}
	if metrics.ByCategory["price"].Failed != 1 {
		t.Errorf("price category failed = %d, want 1", metrics.ByCategory["price"].Failed)
	}
	if len(metrics.FailedDetails) != 1 || !strings.Contains(metrics.FailedDetails[0], "t2") {
		t.Errorf("FailedDetails = %v, want one entry for t2", metrics.FailedDetails)
	}
}

func TestEvaluateSelectionArgMismatch(t *testing.T) {
	suite := &SelectionSuite{
		Tests: []SelectionTest{
			{
				ID: "t1", Category: "chart",
				Input:        "hourly candles",
				ExpectedTool: "get_chart_data",
				ExpectedArgs: map[string]any{"type": "1h"},
			},
		},
	}

	selector := &scriptedSelector{
		answers: map[string]string{"hourly candles": "get_chart_data"},
		args:    map[string]map[string]any{"hourly candles": {"type": "1d"}},
	}

	metrics := EvaluateSelection(suite, selector)
	if metrics.PassedTests != 0 {
		t.Error("wrong argument value should fail the test")
	}
}

func TestEvaluateConfusion(t *testing.T) {
	suite := &ConfusionSuite{
		Pairs: []ConfusionPair{
			{
				ID:    "price_now_vs_history",
				Tools: []string{"get_token_price", "get_price_history"},
				Tests: []ConfusionTest{
					{Input: "current price", Expected: "get_token_price", Reason: "present tense"},
					{Input: "past month", Expected: "get_price_history", Reason: "time range"},
				},
			},
		},
	}

	selector := &scriptedSelector{
		answers: map[string]string{
			"current price": "get_token_price",
			"past month":    "get_token_price", // systematic confusion
		},
	}

	metrics := EvaluateConfusion(suite, selector)
	if metrics.TotalTests != 2 || metrics.PassedTests != 1 {
		t.Errorf("metrics = %d/%d, want 1/2", metrics.PassedTests, metrics.TotalTests)
	}
	if metrics.ByCategory["price_now_vs_history"].Failed != 1 {
		t.Error("failure should be attributed to the pair")
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "1h", "1h", true},
		{"different strings", "1h", "1d", false},
		{"int vs json float", 10, float64(10), true},
		{"float vs json float", 1.5, 1.5, true},
		{"both nil", nil, nil, true},
		{"one nil", "x", nil, false},
		{"bools", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &Metrics{
		TotalTests:  2,
		PassedTests: 1,
		FailedTests: 1,
		Accuracy:    0.5,
		ByCategory: map[string]*CategoryMetrics{
			"price": {Total: 2, Passed: 1, Failed: 1},
		},
		FailedDetails: []string{"[t2] some input: wrong tool"},
	}

	out := FormatMetrics(metrics, "Test Suite")
	for _, want := range []string{"Test Suite", "Total: 2", "50.0%", "price", "[t2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
