// Solana Tracker MCP Server - A Model Context Protocol server for Solana
// market data. Exposes the Solana Tracker data API as read-only MCP tools:
// token info, holders, trades, prices, charts, wallet PnL, and stats.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/solanatracker/solana-data-mcp-server/internal/tracker"
	"github.com/solanatracker/solana-data-mcp-server/tools"
	"github.com/solanatracker/solana-data-mcp-server/tracing"
)

const (
	ServerName    = "solana-data-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Solana Tracker MCP Server provides read-only market data tools for the Solana blockchain.

Tool categories:
- Token: get_token_information, get_token_by_pool, get_token_holders, get_token_holders_top, get_token_ath, get_tokens_by_deployer, get_latest_tokens, get_trending_tokens, get_trending_tokens_by_timeframe, get_tokens_by_volume, get_token_overview, get_graduated_tokens
- Search: search_tokens
- Price: get_token_price, get_multiple_token_prices, get_price_history, get_price_at_timestamp
- Wallet: get_wallet_tokens, get_wallet_basic, get_wallet_trades
- Trades: get_trades_token, get_trades_token_pool, get_trades_token_pool_wallet, get_trades_token_wallet
- Charts: get_chart_data, get_chart_data_by_pool
- PnL: get_pnl_wallet, get_pnl_token, get_first_buyers
- Traders: get_top_traders_all, get_top_traders_token
- Stats: get_stats_token, get_stats_token_pool

All tools return raw JSON from the Solana Tracker data API. Addresses are base58.

Configure via environment variables:
- SOLANA_TRACKER_API_KEY: API key (required)
- SOLANA_TRACKER_BASE_URL: Override the API endpoint (optional)
- SOLANA_TRACKER_TIMEOUT: Request timeout, e.g. 30s (optional)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := tracker.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Create Solana Tracker client
	client := tracker.NewClient(config, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	if err := registry.RegisterAll(server); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	// Run server on stdio transport
	logger.Info("Starting Solana Tracker MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("Server stopped")
}
