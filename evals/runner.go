// Package evals provides an evaluation harness for MCP tool selection
// accuracy. Suites are JSON files pairing natural language inputs with the
// tool an agent should pick from the market-data catalog; a ToolSelector
// implementation (an LLM under test, or a mock) is scored against them.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// SelectionTest is a single tool selection case: one user input, one
// correct tool, and optionally the arguments the selector should extract.
type SelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args,omitempty"`
	NotTools     []string       `json:"not_tools,omitempty"`
}

// SelectionSuite contains all tool selection tests.
type SelectionSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Tests       []SelectionTest `json:"tests"`
}

// ConfusionTest is one disambiguation case inside a confusion pair.
type ConfusionTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair groups tools that agents commonly mix up, such as
// get_token_price vs get_price_history, with inputs that force the choice.
type ConfusionPair struct {
	ID             string          `json:"id"`
	Tools          []string        `json:"tools"`
	Disambiguation string          `json:"disambiguation"`
	Tests          []ConfusionTest `json:"tests"`
}

// ConfusionSuite contains all confusion pair tests.
type ConfusionSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ToolSelector is implemented by the system under evaluation.
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a natural
	// language input.
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// Metrics aggregates the outcome of an evaluation run.
type Metrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics counts outcomes per category (or per confusion pair).
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// LoadSelectionSuite loads tool selection tests from a JSON file.
func LoadSelectionSuite(path string) (*SelectionSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite SelectionSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &suite, nil
}

// LoadConfusionSuite loads confusion pair tests from a JSON file.
func LoadConfusionSuite(path string) (*ConfusionSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ConfusionSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &suite, nil
}

// LoadAll loads both suites from a directory.
func LoadAll(dir string) (*SelectionSuite, *ConfusionSuite, error) {
	selection, err := LoadSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}

	confusion, err := LoadConfusionSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}

	return selection, confusion, nil
}

// Validate checks that every tool a suite references exists in the
// catalog. A suite naming a nonexistent tool would silently score every
// selector as failing, so this runs before any evaluation.
func Validate(selection *SelectionSuite, confusion *ConfusionSuite, catalog map[string]bool) error {
	var bad []string

	if selection != nil {
		for _, test := range selection.Tests {
			if !catalog[test.ExpectedTool] {
				bad = append(bad, fmt.Sprintf("%s: expected tool %q not in catalog", test.ID, test.ExpectedTool))
			}
			for _, not := range test.NotTools {
				if !catalog[not] {
					bad = append(bad, fmt.Sprintf("%s: forbidden tool %q not in catalog", test.ID, not))
				}
			}
		}
	}

	if confusion != nil {
		for _, pair := range confusion.Pairs {
			for _, tool := range pair.Tools {
				if !catalog[tool] {
					bad = append(bad, fmt.Sprintf("%s: tool %q not in catalog", pair.ID, tool))
				}
			}
			for _, test := range pair.Tests {
				if !catalog[test.Expected] {
					bad = append(bad, fmt.Sprintf("%s: expected tool %q not in catalog", pair.ID, test.Expected))
				}
			}
		}
	}

	if len(bad) > 0 {
		return fmt.Errorf("suite references unknown tools:\n  %s", strings.Join(bad, "\n  "))
	}
	return nil
}

// EvaluateSelection scores a selector against the selection suite.
func EvaluateSelection(suite *SelectionSuite, selector ToolSelector) *Metrics {
	metrics := &Metrics{ByCategory: make(map[string]*CategoryMetrics)}

	for _, test := range suite.Tests {
		metrics.TotalTests++
		if metrics.ByCategory[test.Category] == nil {
			metrics.ByCategory[test.Category] = &CategoryMetrics{}
		}
		metrics.ByCategory[test.Category].Total++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		var errors []string
		if err != nil {
			errors = append(errors, fmt.Sprintf("selector error: %v", err))
		}
		if actualTool != test.ExpectedTool {
			errors = append(errors, fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
		}
		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				errors = append(errors, fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}
		for key, want := range test.ExpectedArgs {
			got, ok := actualArgs[key]
			if !ok {
				errors = append(errors, fmt.Sprintf("missing arg %s (expected %v)", key, want))
			} else if !compareValues(want, got) {
				errors = append(errors, fmt.Sprintf("wrong arg %s: expected %v, got %v", key, want, got))
			}
		}

		if len(errors) == 0 {
			metrics.PassedTests++
			metrics.ByCategory[test.Category].Passed++
		} else {
			metrics.FailedTests++
			metrics.ByCategory[test.Category].Failed++
			metrics.FailedDetails = append(metrics.FailedDetails,
				fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(errors, "; ")))
		}
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}
	return metrics
}

// EvaluateConfusion scores a selector against the confusion pairs,
// keyed per pair so systematic mix-ups stand out in the breakdown.
func EvaluateConfusion(suite *ConfusionSuite, selector ToolSelector) *Metrics {
	metrics := &Metrics{ByCategory: make(map[string]*CategoryMetrics)}

	for _, pair := range suite.Pairs {
		if metrics.ByCategory[pair.ID] == nil {
			metrics.ByCategory[pair.ID] = &CategoryMetrics{}
		}

		for _, test := range pair.Tests {
			metrics.TotalTests++
			metrics.ByCategory[pair.ID].Total++

			actualTool, _, err := selector.SelectTool(test.Input)

			if err == nil && actualTool == test.Expected {
				metrics.PassedTests++
				metrics.ByCategory[pair.ID].Passed++
			} else {
				metrics.FailedTests++
				metrics.ByCategory[pair.ID].Failed++
				metrics.FailedDetails = append(metrics.FailedDetails,
					fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
						pair.ID, test.Input, test.Expected, actualTool, test.Reason))
			}
		}
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}
	return metrics
}

// compareValues compares expected and actual argument values. JSON
// decodes all numbers to float64, so numeric kinds compare by value.
func compareValues(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	return reflect.DeepEqual(expected, actual)
}

// FormatMetrics returns a human-readable summary of an evaluation run.
func FormatMetrics(metrics *Metrics, suiteName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n=== %s ===\n", suiteName))
	b.WriteString(fmt.Sprintf("Total: %d tests\n", metrics.TotalTests))
	b.WriteString(fmt.Sprintf("Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Failed: %d\n", metrics.FailedTests))

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for cat, m := range metrics.ByCategory {
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				b.WriteString(fmt.Sprintf("  %-30s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc))
			}
		}
	}

	const maxDetails = 10
	if n := len(metrics.FailedDetails); n > 0 {
		shown := metrics.FailedDetails
		if n > maxDetails {
			shown = shown[:maxDetails]
			b.WriteString(fmt.Sprintf("\nFailed Tests (showing first %d of %d):\n", maxDetails, n))
		} else {
			b.WriteString("\nFailed Tests:\n")
		}
		for _, detail := range shown {
			b.WriteString(fmt.Sprintf("  - %s\n", detail))
		}
	}

	return b.String()
}
