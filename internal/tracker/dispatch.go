package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/solanatracker/solana-data-mcp-server/internal/apierr"
)

// Invoke dispatches a tool call to the upstream API. It resolves the tool
// name against the template table, validates required-parameter presence,
// substitutes path placeholders, attaches declared query parameters that
// are present in args, and performs exactly one GET. The response body is
// returned verbatim; failures carry one of the apierr kinds.
func (c *Client) Invoke(ctx context.Context, toolName string, args map[string]any) (json.RawMessage, error) {
	tpl, ok := Templates[toolName]
	if !ok {
		return nil, &apierr.UnknownToolError{Tool: toolName}
	}

	for _, name := range tpl.RequiredParams() {
		if !present(args, name) {
			return nil, &apierr.InvalidArgumentsError{Tool: toolName, Parameter: name}
		}
	}

	path, err := expandPath(tpl.Path, args)
	if err != nil {
		return nil, &apierr.InternalError{Err: err}
	}

	params := url.Values{}
	for _, name := range tpl.Query {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		params.Set(name, formatValue(v))
	}

	return c.get(ctx, tpl.Path, path, params)
}

// present reports whether a required parameter was supplied. Nil and empty
// string count as missing; the upstream would otherwise receive a literal
// empty path segment.
func present(args map[string]any, name string) bool {
	v, ok := args[name]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// expandPath substitutes {placeholder} segments with their argument values.
// Values are path-escaped so malformed input cannot inject extra segments;
// base58 addresses pass through unchanged.
func expandPath(template string, args map[string]any) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.Index(rest[open:], "}")
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in path template %q", template)
		}
		name := rest[open+1 : open+end]
		v, ok := args[name]
		if !ok {
			return "", fmt.Errorf("no argument for path parameter %q", name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(formatValue(v)))
		rest = rest[open+end+1:]
	}
}

// formatValue renders an argument as a query/path string. Strings pass
// through untouched; JSON numbers and booleans use their canonical text
// form. Anything else falls back to fmt formatting.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
