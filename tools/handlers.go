package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/solanatracker/solana-data-mcp-server/internal/tracker"
	"github.com/solanatracker/solana-data-mcp-server/metrics"
	"github.com/solanatracker/solana-data-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry wires the tool catalog to the Solana Tracker dispatcher.
// Every tool shares one code path: typed arguments give the MCP SDK a
// schema to infer, then flatten into the argument map the dispatcher
// consumes.
type HandlerRegistry struct {
	client *tracker.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *tracker.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server. It first verifies
// that the catalog and the dispatcher's template table agree exactly; a
// mismatch means a tool would either be advertised without a route or
// routed without being advertised, so startup refuses to continue.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) error {
	if err := h.verifyCatalog(); err != nil {
		return err
	}
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
	return nil
}

// verifyCatalog checks the catalog/template bijection.
func (h *HandlerRegistry) verifyCatalog() error {
	seen := make(map[string]bool, len(AllTools))
	for _, spec := range AllTools {
		if seen[spec.Name] {
			return fmt.Errorf("duplicate tool %q in catalog", spec.Name)
		}
		seen[spec.Name] = true
		if _, ok := tracker.Templates[spec.Name]; !ok {
			return fmt.Errorf("tool %q has no request template", spec.Name)
		}
	}
	for name := range tracker.Templates {
		if !seen[name] {
			return fmt.Errorf("request template %q has no catalog entry", name)
		}
	}
	return nil
}

// registerByName dispatches to the typed registration for a spec. The
// Method string selects the argument struct; the dispatcher itself is
// keyed by spec.Name.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Token tools
	case "GetTokenInformation":
		register[tracker.GetTokenInformationArgs](h, server, tool, spec)
	case "GetTokenByPool":
		register[tracker.GetTokenByPoolArgs](h, server, tool, spec)
	case "GetTokenHolders":
		register[tracker.GetTokenHoldersArgs](h, server, tool, spec)
	case "GetTokenHoldersTop":
		register[tracker.GetTokenHoldersTopArgs](h, server, tool, spec)
	case "GetTokenAth":
		register[tracker.GetTokenAthArgs](h, server, tool, spec)
	case "GetTokensByDeployer":
		register[tracker.GetTokensByDeployerArgs](h, server, tool, spec)
	case "GetLatestTokens":
		register[tracker.GetLatestTokensArgs](h, server, tool, spec)
	case "GetTrendingTokens":
		register[tracker.GetTrendingTokensArgs](h, server, tool, spec)
	case "GetTrendingTokensByTimeframe":
		register[tracker.GetTrendingTokensByTimeframeArgs](h, server, tool, spec)
	case "GetTokensByVolume":
		register[tracker.GetTokensByVolumeArgs](h, server, tool, spec)
	case "GetTokenOverview":
		register[tracker.GetTokenOverviewArgs](h, server, tool, spec)
	case "GetGraduatedTokens":
		register[tracker.GetGraduatedTokensArgs](h, server, tool, spec)

	// Search tools
	case "SearchTokens":
		register[tracker.SearchTokensArgs](h, server, tool, spec)

	// Price tools
	case "GetTokenPrice":
		register[tracker.GetTokenPriceArgs](h, server, tool, spec)
	case "GetMultipleTokenPrices":
		register[tracker.GetMultipleTokenPricesArgs](h, server, tool, spec)
	case "GetPriceHistory":
		register[tracker.GetPriceHistoryArgs](h, server, tool, spec)
	case "GetPriceAtTimestamp":
		register[tracker.GetPriceAtTimestampArgs](h, server, tool, spec)

	// Wallet tools
	case "GetWalletTokens":
		register[tracker.GetWalletTokensArgs](h, server, tool, spec)
	case "GetWalletBasic":
		register[tracker.GetWalletBasicArgs](h, server, tool, spec)
	case "GetWalletTrades":
		register[tracker.GetWalletTradesArgs](h, server, tool, spec)

	// Trade tools
	case "GetTradesToken":
		register[tracker.GetTradesTokenArgs](h, server, tool, spec)
	case "GetTradesTokenPool":
		register[tracker.GetTradesTokenPoolArgs](h, server, tool, spec)
	case "GetTradesTokenPoolWallet":
		register[tracker.GetTradesTokenPoolWalletArgs](h, server, tool, spec)
	case "GetTradesTokenWallet":
		register[tracker.GetTradesTokenWalletArgs](h, server, tool, spec)

	// Chart tools
	case "GetChartData":
		register[tracker.GetChartDataArgs](h, server, tool, spec)
	case "GetChartDataByPool":
		register[tracker.GetChartDataByPoolArgs](h, server, tool, spec)

	// PnL tools
	case "GetPnlWallet":
		register[tracker.GetPnlWalletArgs](h, server, tool, spec)
	case "GetPnlToken":
		register[tracker.GetPnlTokenArgs](h, server, tool, spec)
	case "GetFirstBuyers":
		register[tracker.GetFirstBuyersArgs](h, server, tool, spec)

	// Trader tools
	case "GetTopTradersAll":
		register[tracker.GetTopTradersAllArgs](h, server, tool, spec)
	case "GetTopTradersToken":
		register[tracker.GetTopTradersTokenArgs](h, server, tool, spec)

	// Stats tools
	case "GetStatsToken":
		register[tracker.GetStatsTokenArgs](h, server, tool, spec)
	case "GetStatsTokenPool":
		register[tracker.GetStatsTokenPoolArgs](h, server, tool, spec)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register registers one tool with the MCP server. The typed Args value
// the SDK decodes is flattened back into a map for the dispatcher, which
// keeps schema inference and request templating in agreement without a
// per-tool handler. The upstream JSON is passed through verbatim as text
// content; no output schema is declared.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, any, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		argMap, err := toArgMap(args)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, 0, false)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		start := time.Now()
		raw, err := h.client.Invoke(ctx, spec.Name, argMap)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, argMap, len(raw))

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	})
}

// toArgMap flattens a typed argument struct into the dispatcher's map
// form. Numbers stay as json.Number so integer arguments keep their
// canonical text form in the outbound query.
func toArgMap(args any) (map[string]any, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encoding arguments: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding arguments: %w", err)
	}
	return m, nil
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// identifyingParams are the argument names worth echoing in execution
// logs. Addresses and queries identify a call; filter flags do not.
var identifyingParams = []string{
	"tokenAddress", "poolAddress", "owner", "wallet",
	"token", "tokens", "pool", "query", "timeframe",
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args map[string]any, responseBytes int) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}
	for _, name := range identifyingParams {
		if v, ok := args[name]; ok {
			if s, ok := v.(string); ok && s != "" {
				attrs = append(attrs, name, s)
			}
		}
	}
	attrs = append(attrs, "response_bytes", responseBytes)
	h.logger.Info("Tool executed", attrs...)
}
