package tools

// AllTools contains all tool specifications for the Solana Tracker MCP
// server, in catalog order. Tool descriptions follow a structured format
// for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// TOKEN TOOLS
	// ==========================================================================
	{
		Name:     "get_token_information",
		Method:   "GetTokenInformation",
		Title:    "Get Token Information",
		Category: "token",
		Description: `Get full metadata for a Solana token: name, symbol, image, decimals, risk score, and every active liquidity pool.

USE WHEN: User asks "what is token X", "show info for this mint", "is this token risky".

NOT FOR: Price only (use get_token_price). Not for holders (use get_token_holders).

PARAMETERS:
- tokenAddress: Token mint address (required)

RETURNS: Token metadata, pool list with liquidity/price/market cap, risk assessment, holder count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_token_by_pool",
		Method:   "GetTokenByPool",
		Title:    "Get Token by Pool",
		Category: "token",
		Description: `Resolve a token from one of its liquidity pool addresses.

USE WHEN: User has a pool/pair address instead of a mint address.

NOT FOR: Lookups by mint address (use get_token_information).

PARAMETERS:
- poolAddress: Liquidity pool address (required)

RETURNS: Same shape as get_token_information for the owning token.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_token_holders",
		Method:   "GetTokenHolders",
		Title:    "Get Token Holders",
		Category: "token",
		Description: `Get holders of a token with their amounts and value.

USE WHEN: User asks "who holds X", "holder distribution", "how many holders".

NOT FOR: Just the top 20 (use get_token_holders_top - cheaper).

PARAMETERS:
- tokenAddress: Token mint address (required)
- page, limit: Pagination (optional)

RETURNS: Total holder count and holder accounts with amount, value, and percentage.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_token_holders_top",
		Method:   "GetTokenHoldersTop",
		Title:    "Get Top Token Holders",
		Category: "token",
		Description: `Get the top 20 holders of a token.

USE WHEN: User asks "biggest holders", "whale wallets for X", "top holders".

PARAMETERS:
- tokenAddress: Token mint address (required)

RETURNS: Top 20 holder accounts with amount, value, and supply percentage.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_token_ath",
		Method:   "GetTokenAth",
		Title:    "Get Token All-Time High",
		Category: "token",
		Description: `Get the all-time-high price of a token.

USE WHEN: User asks "what was the ATH", "peak price", "how far below ATH is X".

PARAMETERS:
- tokenAddress: Token mint address (required)

RETURNS: Highest recorded price and the timestamp it occurred.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_tokens_by_deployer",
		Method:   "GetTokensByDeployer",
		Title:    "Get Tokens by Deployer",
		Category: "token",
		Description: `List all tokens created by a deployer wallet.

USE WHEN: User asks "what else did this dev launch", "tokens from this deployer", rug-history checks.

PARAMETERS:
- wallet: Deployer wallet address (required)

RETURNS: Tokens deployed by the wallet with their current market data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_latest_tokens",
		Method:   "GetLatestTokens",
		Title:    "Get Latest Tokens",
		Category: "token",
		Description: `List the most recently created tokens (up to 100 per page).

USE WHEN: User asks "newest launches", "what just launched", "latest tokens".

NOT FOR: Popular tokens (use get_trending_tokens).

PARAMETERS:
- page: Page number 1-10 (optional)

RETURNS: Recently created tokens with metadata and initial pool data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trending_tokens",
		Method:   "GetTrendingTokens",
		Title:    "Get Trending Tokens",
		Category: "token",
		Description: `List tokens trending right now (default window).

USE WHEN: User asks "what's trending", "hot tokens", "what's pumping".

NOT FOR: A specific window (use get_trending_tokens_by_timeframe).

PARAMETERS: None

RETURNS: Trending tokens ranked by activity with market data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trending_tokens_by_timeframe",
		Method:   "GetTrendingTokensByTimeframe",
		Title:    "Get Trending Tokens by Timeframe",
		Category: "token",
		Description: `List trending tokens within a specific time window.

USE WHEN: User asks "trending in the last hour", "hot tokens today".

PARAMETERS:
- timeframe: 5m, 15m, 30m, 1h, 6h, 12h, or 24h (required)

RETURNS: Trending tokens for the window, ranked by activity.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_tokens_by_volume",
		Method:   "GetTokensByVolume",
		Title:    "Get Tokens by Volume",
		Category: "token",
		Description: `List tokens ranked by trading volume.

USE WHEN: User asks "highest volume tokens", "most traded today".

PARAMETERS:
- timeframe: Volume window, e.g. 1h or 24h (optional)

RETURNS: Tokens ordered by volume with market data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_token_overview",
		Method:   "GetTokenOverview",
		Title:    "Get Token Overview",
		Category: "token",
		Description: `Get an overview of latest, graduating, and graduated tokens in one call.

USE WHEN: User wants a market snapshot across launch stages.

PARAMETERS: None

RETURNS: Three lists: latest, graduating, and graduated tokens.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_graduated_tokens",
		Method:   "GetGraduatedTokens",
		Title:    "Get Graduated Tokens",
		Category: "token",
		Description: `List tokens that completed their launchpad bonding curve (e.g. pumpfun graduates).

USE WHEN: User asks "recent graduates", "tokens that bonded".

PARAMETERS: None

RETURNS: Graduated tokens with market data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "search_tokens",
		Method:   "SearchTokens",
		Title:    "Search Tokens",
		Category: "search",
		Description: `Flexible token search with filters on liquidity, market cap, creation time, and market.

USE WHEN: User asks "find tokens named X", "tokens with at least $50k liquidity", "new raydium tokens".

NOT FOR: Known mint address (use get_token_information).

PARAMETERS:
- query: Symbol, name, or address (required)
- minLiquidity/maxLiquidity, minMarketCap/maxMarketCap: USD filters (optional)
- minCreatedAt/maxCreatedAt: Unix timestamp range (optional)
- sortBy, sortOrder, page, limit, showAllPools, lpBurn, market (optional)

RETURNS: Matching tokens with market data, ordered per sort options.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PRICE TOOLS
	// ==========================================================================
	{
		Name:     "get_token_price",
		Method:   "GetTokenPrice",
		Title:    "Get Token Price",
		Category: "price",
		Description: `Get the current USD price of a token.

USE WHEN: User asks "price of X", "how much is this token".

NOT FOR: Several tokens at once (use get_multiple_token_prices). Not for history (use get_price_history).

PARAMETERS:
- token: Token mint address (required)
- priceChanges: Include change percentages (optional)

RETURNS: Current price, liquidity, market cap, and last update time.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_multiple_token_prices",
		Method:   "GetMultipleTokenPrices",
		Title:    "Get Multiple Token Prices",
		Category: "price",
		Description: `Get current USD prices for several tokens in one call.

USE WHEN: User asks for prices of a list of tokens.

PARAMETERS:
- tokens: Comma-separated mint addresses (required)
- priceChanges: Include change percentages (optional)

RETURNS: Price entry per token keyed by address.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_price_history",
		Method:   "GetPriceHistory",
		Title:    "Get Price History",
		Category: "price",
		Description: `Get historic price points for a token.

USE WHEN: User asks "price over time", "how has X performed".

NOT FOR: Candle data for charting (use get_chart_data).

PARAMETERS:
- token: Token mint address (required)

RETURNS: Current price plus price at standard historic offsets.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_price_at_timestamp",
		Method:   "GetPriceAtTimestamp",
		Title:    "Get Price at Timestamp",
		Category: "price",
		Description: `Get a token's price at a specific moment in time.

USE WHEN: User asks "what was the price on <date>", "price when I bought".

PARAMETERS:
- token: Token mint address (required)
- timestamp: Unix timestamp (required)

RETURNS: Price closest to the requested timestamp.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WALLET TOOLS
	// ==========================================================================
	{
		Name:     "get_wallet_tokens",
		Method:   "GetWalletTokens",
		Title:    "Get Wallet Tokens",
		Category: "wallet",
		Description: `Get all tokens a wallet holds, with current values in USD and SOL.

USE WHEN: User asks "what does this wallet hold", "portfolio of X".

NOT FOR: Trade history (use get_wallet_trades). Use get_wallet_basic for a faster, price-less variant.

PARAMETERS:
- owner: Wallet address (required)

RETURNS: Token holdings with balances, values, and wallet totals.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_wallet_basic",
		Method:   "GetWalletBasic",
		Title:    "Get Wallet Basic",
		Category: "wallet",
		Description: `Get a wallet's token holdings without price enrichment (faster, lighter).

USE WHEN: User only needs balances, or get_wallet_tokens is too slow for a large wallet.

PARAMETERS:
- owner: Wallet address (required)

RETURNS: Token balances without per-token market data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_wallet_trades",
		Method:   "GetWalletTrades",
		Title:    "Get Wallet Trades",
		Category: "wallet",
		Description: `Get the latest trades of a wallet across all tokens.

USE WHEN: User asks "what has this wallet been trading", "recent swaps by X".

NOT FOR: Trades of one token (use get_trades_token_wallet).

PARAMETERS:
- owner: Wallet address (required)
- cursor: Pagination cursor from previous response (optional)

RETURNS: Trades with amounts, prices, volume, and a next-page cursor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TRADE TOOLS
	// ==========================================================================
	{
		Name:     "get_trades_token",
		Method:   "GetTradesToken",
		Title:    "Get Token Trades",
		Category: "trades",
		Description: `Get the latest trades for a token across all its pools.

USE WHEN: User asks "recent trades for X", "who's buying this token".

NOT FOR: One pool only (use get_trades_token_pool).

PARAMETERS:
- tokenAddress: Token mint address (required)
- cursor, showMeta, parseJupiter, hideArb, sortDirection (optional)

RETURNS: Trades with wallet, side, amounts, price, and a next-page cursor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trades_token_pool",
		Method:   "GetTradesTokenPool",
		Title:    "Get Pool Trades",
		Category: "trades",
		Description: `Get the latest trades for a specific token pool.

USE WHEN: User asks about activity in one pool/pair.

PARAMETERS:
- tokenAddress: Token mint address (required)
- poolAddress: Pool address (required)
- cursor, showMeta, parseJupiter, hideArb, sortDirection (optional)

RETURNS: Trades in the pool with a next-page cursor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trades_token_pool_wallet",
		Method:   "GetTradesTokenPoolWallet",
		Title:    "Get Wallet Trades in Pool",
		Category: "trades",
		Description: `Get a specific wallet's trades in one token pool.

USE WHEN: User asks "did wallet X trade in this pool".

PARAMETERS:
- tokenAddress: Token mint address (required)
- poolAddress: Pool address (required)
- owner: Wallet address (required)
- cursor, showMeta, parseJupiter, hideArb, sortDirection (optional)

RETURNS: The wallet's trades in that pool with a next-page cursor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_trades_token_wallet",
		Method:   "GetTradesTokenWallet",
		Title:    "Get Wallet Trades for Token",
		Category: "trades",
		Description: `Get a wallet's trades for a token across all pools.

USE WHEN: User asks "when did this wallet buy/sell X".

NOT FOR: All of the wallet's activity (use get_wallet_trades).

PARAMETERS:
- tokenAddress: Token mint address (required)
- owner: Wallet address (required)
- cursor, showMeta, parseJupiter, hideArb, sortDirection (optional)

RETURNS: The wallet's trades for the token with a next-page cursor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CHART TOOLS
	// ==========================================================================
	{
		Name:     "get_chart_data",
		Method:   "GetChartData",
		Title:    "Get Chart Data",
		Category: "chart",
		Description: `Get OHLCV candles for a token, for charting or technical analysis.

USE WHEN: User asks "chart for X", "candles", "price action over the last week".

PARAMETERS:
- token: Token mint address (required)
- type: Interval 1s..1mn, e.g. 1m, 15m, 1h, 1d (optional)
- time_from, time_to: Unix timestamp range (optional)
- marketCap: Market-cap candles instead of price (optional)
- removeOutliers: Filter outlier candles, default true (optional)

RETURNS: OHLCV candle array.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_chart_data_by_pool",
		Method:   "GetChartDataByPool",
		Title:    "Get Pool Chart Data",
		Category: "chart",
		Description: `Get OHLCV candles for a specific token pool.

USE WHEN: User wants the chart of one pool rather than the aggregate.

PARAMETERS:
- token: Token mint address (required)
- pool: Pool address (required)
- type, time_from, time_to, marketCap, removeOutliers (optional)

RETURNS: OHLCV candle array for the pool.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PNL TOOLS
	// ==========================================================================
	{
		Name:     "get_pnl_wallet",
		Method:   "GetPnlWallet",
		Title:    "Get Wallet PnL",
		Category: "pnl",
		Description: `Get profit-and-loss for every token position in a wallet.

USE WHEN: User asks "is this wallet profitable", "PnL of X", "trader performance".

NOT FOR: One token (use get_pnl_token).

PARAMETERS:
- wallet: Wallet address (required)
- showHistoricPnL: Include 24h/7d/30d windows (optional)
- holdingCheck: Re-verify current holdings first (optional)
- hideDetails: Summary only (optional)

RETURNS: Realized/unrealized PnL, win rate, totals, and per-token breakdown.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pnl_token",
		Method:   "GetPnlToken",
		Title:    "Get Token PnL",
		Category: "pnl",
		Description: `Get a wallet's profit-and-loss for one specific token.

USE WHEN: User asks "how much did X make on this token".

PARAMETERS:
- wallet: Wallet address (required)
- token: Token mint address (required)

RETURNS: Holding, bought/sold totals, realized and unrealized PnL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_first_buyers",
		Method:   "GetFirstBuyers",
		Title:    "Get First Buyers",
		Category: "pnl",
		Description: `Get the first buyers (up to 100) of a token with each wallet's PnL.

USE WHEN: User asks "who sniped this token", "early buyers", "insider check".

PARAMETERS:
- token: Token mint address (required)

RETURNS: First buyer wallets with entry, current position, and PnL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TRADER TOOLS
	// ==========================================================================
	{
		Name:     "get_top_traders_all",
		Method:   "GetTopTradersAll",
		Title:    "Get Top Traders",
		Category: "traders",
		Description: `Get the most profitable traders across all tokens.

USE WHEN: User asks "best traders", "most profitable wallets".

NOT FOR: One token (use get_top_traders_token).

PARAMETERS:
- expandPnl: Include full PnL details (optional)
- sortBy: total or winPercentage (optional)
- page: Page number (optional)

RETURNS: Ranked trader wallets with profit summaries.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_top_traders_token",
		Method:   "GetTopTradersToken",
		Title:    "Get Top Token Traders",
		Category: "traders",
		Description: `Get the top traders for a specific token.

USE WHEN: User asks "who made the most on X".

PARAMETERS:
- token: Token mint address (required)

RETURNS: Top trader wallets for the token with PnL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// STATS TOOLS
	// ==========================================================================
	{
		Name:     "get_stats_token",
		Method:   "GetStatsToken",
		Title:    "Get Token Stats",
		Category: "stats",
		Description: `Get detailed trading stats for a token over standard time windows.

USE WHEN: User asks "buy/sell pressure", "volume breakdown", "trader counts for X".

PARAMETERS:
- token: Token mint address (required)

RETURNS: Per-window stats: buyers, sellers, volume, transactions, price changes.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_stats_token_pool",
		Method:   "GetStatsTokenPool",
		Title:    "Get Pool Stats",
		Category: "stats",
		Description: `Get detailed trading stats for a specific token pool.

USE WHEN: User wants stats scoped to one pool.

PARAMETERS:
- token: Token mint address (required)
- pool: Pool address (required)

RETURNS: Per-window stats for the pool.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
