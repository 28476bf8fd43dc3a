package tracker

import "strings"

// RequestTemplate describes the upstream request a tool maps to.
// Every tool is a single HTTP GET; the path may embed {placeholder}
// segments, each of which is a required parameter. Query lists the
// recognized query parameters in declaration order; names also present
// in Required must be supplied by the caller, the rest are optional and
// omitted from the outbound request when absent.
type RequestTemplate struct {
	Path     string
	Query    []string
	Required []string
}

// Templates maps each tool name to its upstream request template.
// The key set must stay identical to the tool catalog in the tools
// package; RegisterAll refuses to start on a mismatch.
var Templates = map[string]RequestTemplate{
	// Token information
	"get_token_information": {
		Path: "/tokens/{tokenAddress}",
	},
	"get_token_by_pool": {
		Path: "/tokens/by-pool/{poolAddress}",
	},
	"get_token_holders": {
		Path:  "/tokens/{tokenAddress}/holders",
		Query: []string{"page", "limit"},
	},
	"get_token_holders_top": {
		Path: "/tokens/{tokenAddress}/holders/top",
	},
	"get_token_ath": {
		Path: "/tokens/{tokenAddress}/ath",
	},
	"get_tokens_by_deployer": {
		Path: "/deployer/{wallet}",
	},
	"search_tokens": {
		Path: "/search",
		Query: []string{
			"query", "page", "limit",
			"minLiquidity", "maxLiquidity",
			"minMarketCap", "maxMarketCap",
			"minCreatedAt", "maxCreatedAt",
			"sortBy", "sortOrder", "showAllPools", "lpBurn", "market",
		},
		Required: []string{"query"},
	},
	"get_latest_tokens": {
		Path:  "/tokens/latest",
		Query: []string{"page"},
	},
	"get_trending_tokens": {
		Path: "/tokens/trending",
	},
	"get_trending_tokens_by_timeframe": {
		Path: "/tokens/trending/{timeframe}",
	},
	"get_tokens_by_volume": {
		Path:  "/tokens/volume",
		Query: []string{"timeframe"},
	},
	"get_token_overview": {
		Path: "/tokens/multi/all",
	},
	"get_graduated_tokens": {
		Path: "/tokens/multi/graduated",
	},

	// Prices
	"get_token_price": {
		Path:     "/price",
		Query:    []string{"token", "priceChanges"},
		Required: []string{"token"},
	},
	"get_multiple_token_prices": {
		Path:     "/price/multi",
		Query:    []string{"tokens", "priceChanges"},
		Required: []string{"tokens"},
	},
	"get_price_history": {
		Path:     "/price/history",
		Query:    []string{"token"},
		Required: []string{"token"},
	},
	"get_price_at_timestamp": {
		Path:     "/price/at",
		Query:    []string{"token", "timestamp"},
		Required: []string{"token", "timestamp"},
	},

	// Wallets
	"get_wallet_tokens": {
		Path: "/wallet/{owner}",
	},
	"get_wallet_basic": {
		Path: "/wallet/{owner}/basic",
	},
	"get_wallet_trades": {
		Path:  "/wallet/{owner}/trades",
		Query: []string{"cursor"},
	},

	// Trades
	"get_trades_token": {
		Path:  "/trades/{tokenAddress}",
		Query: []string{"cursor", "showMeta", "parseJupiter", "hideArb", "sortDirection"},
	},
	"get_trades_token_pool": {
		Path:  "/trades/{tokenAddress}/{poolAddress}",
		Query: []string{"cursor", "showMeta", "parseJupiter", "hideArb", "sortDirection"},
	},
	"get_trades_token_pool_wallet": {
		Path:  "/trades/{tokenAddress}/{poolAddress}/{owner}",
		Query: []string{"cursor", "showMeta", "parseJupiter", "hideArb", "sortDirection"},
	},
	"get_trades_token_wallet": {
		Path:  "/trades/{tokenAddress}/by-wallet/{owner}",
		Query: []string{"cursor", "showMeta", "parseJupiter", "hideArb", "sortDirection"},
	},

	// Charts
	"get_chart_data": {
		Path:  "/chart/{token}",
		Query: []string{"type", "time_from", "time_to", "marketCap", "removeOutliers"},
	},
	"get_chart_data_by_pool": {
		Path:  "/chart/{token}/{pool}",
		Query: []string{"type", "time_from", "time_to", "marketCap", "removeOutliers"},
	},

	// PnL
	"get_pnl_wallet": {
		Path:  "/pnl/{wallet}",
		Query: []string{"showHistoricPnL", "holdingCheck", "hideDetails"},
	},
	"get_pnl_token": {
		Path: "/pnl/{wallet}/{token}",
	},
	"get_first_buyers": {
		Path: "/first-buyers/{token}",
	},

	// Top traders and stats
	"get_top_traders_all": {
		Path:  "/top-traders/all",
		Query: []string{"expandPnl", "sortBy", "page"},
	},
	"get_top_traders_token": {
		Path: "/top-traders/{token}",
	},
	"get_stats_token": {
		Path: "/stats/{token}",
	},
	"get_stats_token_pool": {
		Path: "/stats/{token}/{pool}",
	},
}

// PathParams returns the placeholder names embedded in a path template,
// in order of appearance.
func (t RequestTemplate) PathParams() []string {
	var params []string
	rest := t.Path
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			return params
		}
		end := strings.Index(rest[open:], "}")
		if end < 0 {
			return params
		}
		params = append(params, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// RequiredParams returns every parameter the caller must supply: all path
// placeholders plus the explicitly required query parameters.
func (t RequestTemplate) RequiredParams() []string {
	params := t.PathParams()
	return append(params, t.Required...)
}
