// Command evals loads the tool selection evaluation suites, validates
// them against the live tool catalog, and reports coverage.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals/testdata
//
// For actual LLM scoring, implement evals.ToolSelector and feed it to
// EvaluateSelection and EvaluateConfusion.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/solanatracker/solana-data-mcp-server/evals"
	"github.com/solanatracker/solana-data-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals/testdata", "Directory containing eval JSON files")
	verbose := flag.Bool("verbose", false, "Show individual test cases")
	flag.Parse()

	selection, confusion, err := evals.LoadAll(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading evals: %v\n", err)
		os.Exit(1)
	}

	catalog := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		catalog[spec.Name] = true
	}

	if err := evals.Validate(selection, confusion, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Suite validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Solana Tracker MCP Server - Evaluation Suites")
	fmt.Println("=============================================")
	fmt.Println()

	confusionTests := 0
	for _, pair := range confusion.Pairs {
		confusionTests += len(pair.Tests)
	}

	fmt.Printf("Tool Selection Tests: %d\n", len(selection.Tests))
	fmt.Printf("Confusion Pair Tests: %d (across %d pairs)\n", confusionTests, len(confusion.Pairs))
	fmt.Println()

	// Coverage: which catalog tools appear in at least one eval
	covered := make(map[string]bool)
	for _, test := range selection.Tests {
		covered[test.ExpectedTool] = true
	}
	for _, pair := range confusion.Pairs {
		for _, tool := range pair.Tools {
			covered[tool] = true
		}
	}
	fmt.Printf("Tool Coverage: %d of %d catalog tools\n", len(covered), len(tools.AllTools))

	var uncovered []string
	for _, spec := range tools.AllTools {
		if !covered[spec.Name] {
			uncovered = append(uncovered, spec.Name)
		}
	}
	if len(uncovered) > 0 && *verbose {
		fmt.Println("\nUncovered tools:")
		for _, name := range uncovered {
			fmt.Printf("  - %s\n", name)
		}
	}

	if *verbose {
		fmt.Println("\nSelection cases:")
		for _, test := range selection.Tests {
			fmt.Printf("  [%s] %q -> %s\n", test.ID, test.Input, test.ExpectedTool)
		}
		fmt.Println("\nConfusion pairs:")
		for _, pair := range confusion.Pairs {
			fmt.Printf("  %s: %v\n", pair.ID, pair.Tools)
			fmt.Printf("    rule: %s\n", pair.Disambiguation)
		}
	}

	fmt.Println("\nSuites are valid against the catalog.")
}
