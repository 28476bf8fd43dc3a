// Package apierr provides the typed error taxonomy for tool dispatch.
// Every failed invocation maps to exactly one of the four kinds; the
// dispatcher never returns an untyped error to the MCP boundary.
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies a dispatch failure.
type Kind string

const (
	// KindUnknownTool means the requested tool name is not in the catalog.
	KindUnknownTool Kind = "unknown_tool"

	// KindInvalidArguments means a required parameter is missing or malformed.
	KindInvalidArguments Kind = "invalid_arguments"

	// KindUpstream means the upstream API returned non-200 or the HTTP
	// transport failed.
	KindUpstream Kind = "upstream_error"

	// KindInternal covers any other unexpected failure during dispatch.
	KindInternal Kind = "internal"
)

// UnknownToolError indicates the tool name has no registered request template.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

// Kind returns KindUnknownTool.
func (e *UnknownToolError) Kind() Kind { return KindUnknownTool }

// InvalidArgumentsError indicates a required parameter was missing or empty.
type InvalidArgumentsError struct {
	Tool      string
	Parameter string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: missing required parameter %q", e.Tool, e.Parameter)
}

// Kind returns KindInvalidArguments.
func (e *InvalidArgumentsError) Kind() Kind { return KindInvalidArguments }

// UpstreamError indicates the upstream API rejected the request or the
// transport failed. Status is 0 when no HTTP response was received.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream request failed: %s", e.Message)
}

// Kind returns KindUpstream.
func (e *UpstreamError) Kind() Kind { return KindUpstream }

// InternalError wraps an unexpected failure so callers see a stable kind
// without leaked internals.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Kind returns KindInternal.
func (e *InternalError) Kind() Kind { return KindInternal }

// IsUnknownTool reports whether err is an UnknownToolError.
func IsUnknownTool(err error) bool {
	var e *UnknownToolError
	return errors.As(err, &e)
}

// IsInvalidArguments reports whether err is an InvalidArgumentsError.
func IsInvalidArguments(err error) bool {
	var e *InvalidArgumentsError
	return errors.As(err, &e)
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// IsInternal reports whether err is an InternalError.
func IsInternal(err error) bool {
	var e *InternalError
	return errors.As(err, &e)
}

// KindOf returns the kind of a dispatch error, or KindInternal for
// errors that are not part of the taxonomy.
func KindOf(err error) Kind {
	type kinder interface{ Kind() Kind }
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}
