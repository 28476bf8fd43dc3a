// Command benchmark measures live latency of the Solana Tracker data API
// through the dispatcher. It needs SOLANA_TRACKER_API_KEY and network
// access; pass a token mint address to probe something other than WSOL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/solanatracker/solana-data-mcp-server/internal/tracker"
)

// wrappedSOL is always indexed, which makes it a stable probe target.
const wrappedSOL = "So11111111111111111111111111111111111111112"

type probe struct {
	tool string
	args map[string]any
}

func main() {
	token := flag.String("token", wrappedSOL, "token mint address to probe")
	runs := flag.Int("runs", 3, "calls per tool")
	flag.Parse()

	config, err := tracker.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := tracker.NewClient(config, logger)
	ctx := context.Background()

	probes := []probe{
		{"get_token_information", map[string]any{"tokenAddress": *token}},
		{"get_token_holders_top", map[string]any{"tokenAddress": *token}},
		{"get_token_price", map[string]any{"token": *token}},
		{"get_token_ath", map[string]any{"tokenAddress": *token}},
		{"get_trades_token", map[string]any{"tokenAddress": *token}},
		{"get_chart_data", map[string]any{"token": *token, "type": "1h"}},
		{"get_stats_token", map[string]any{"token": *token}},
		{"get_trending_tokens", map[string]any{}},
		{"search_tokens", map[string]any{"query": "sol", "limit": 10}},
	}

	fmt.Println("Solana Tracker MCP Server - API Latency Measurements")
	fmt.Println("====================================================")
	fmt.Printf("Token: %s  Runs per tool: %d\n\n", *token, *runs)

	for _, p := range probes {
		var total time.Duration
		var best, worst time.Duration
		var bytes int
		failed := false

		for i := 0; i < *runs; i++ {
			start := time.Now()
			raw, err := client.Invoke(ctx, p.tool, p.args)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("%-34s error: %v\n", p.tool, err)
				failed = true
				break
			}
			bytes = len(raw)
			total += elapsed
			if best == 0 || elapsed < best {
				best = elapsed
			}
			if elapsed > worst {
				worst = elapsed
			}
		}
		if failed {
			continue
		}
		avg := total / time.Duration(*runs)
		fmt.Printf("%-34s avg %-10v min %-10v max %-10v %d bytes\n",
			p.tool, avg.Round(time.Millisecond), best.Round(time.Millisecond),
			worst.Round(time.Millisecond), bytes)
	}
}
