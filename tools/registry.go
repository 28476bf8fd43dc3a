// Package tools provides the declarative catalog of MCP tool definitions
// and their registration against the Solana Tracker dispatcher. Tools are
// defined as data; a single generic handler wires every tool to the
// dispatcher with uniform metrics, tracing, and error wrapping.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps one-to-one onto a request template in the tracker
// package, keyed by Name.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "get_token_information")
	Name string

	// Method is the argument-type selector used at registration time
	// (e.g., "GetTokenInformation")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (token, search, price, wallet,
	// trades, chart, pnl, traders, stats)
	Category string

	// ReadOnly indicates the tool doesn't modify upstream state
	// (every tool here is a GET)
	ReadOnly bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
