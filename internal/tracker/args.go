package tracker

// Argument structs for MCP tool registration. The MCP SDK infers each
// tool's input schema from these types: fields without omitempty are
// required, the jsonschema tag is the parameter description shown to the
// calling agent. The schemas are advisory; the dispatcher only re-checks
// required-parameter presence.

// GetTokenInformationArgs retrieves full metadata for one token
type GetTokenInformationArgs struct {
	TokenAddress string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
}

// GetTokenByPoolArgs resolves a token from one of its liquidity pools
type GetTokenByPoolArgs struct {
	PoolAddress string `json:"poolAddress" jsonschema:"The liquidity pool address (base58)"`
}

// GetTokenHoldersArgs lists holders of a token
type GetTokenHoldersArgs struct {
	TokenAddress string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
	Page         *int   `json:"page,omitempty" jsonschema:"Page number for paginated results"`
	Limit        *int   `json:"limit,omitempty" jsonschema:"Maximum holders to return per page"`
}

// GetTokenHoldersTopArgs lists the top 20 holders of a token
type GetTokenHoldersTopArgs struct {
	TokenAddress string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
}

// GetTokenAthArgs retrieves the all-time-high price of a token
type GetTokenAthArgs struct {
	TokenAddress string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
}

// GetTokensByDeployerArgs lists tokens created by a deployer wallet
type GetTokensByDeployerArgs struct {
	Wallet string `json:"wallet" jsonschema:"The deployer wallet address (base58)"`
}

// SearchTokensArgs performs a filtered token search
type SearchTokensArgs struct {
	Query        string   `json:"query" jsonschema:"Search term: token symbol, name, or address"`
	Page         *int     `json:"page,omitempty" jsonschema:"Page number for paginated results"`
	Limit        *int     `json:"limit,omitempty" jsonschema:"Maximum results per page"`
	MinLiquidity *float64 `json:"minLiquidity,omitempty" jsonschema:"Minimum liquidity in USD"`
	MaxLiquidity *float64 `json:"maxLiquidity,omitempty" jsonschema:"Maximum liquidity in USD"`
	MinMarketCap *float64 `json:"minMarketCap,omitempty" jsonschema:"Minimum market cap in USD"`
	MaxMarketCap *float64 `json:"maxMarketCap,omitempty" jsonschema:"Maximum market cap in USD"`
	MinCreatedAt *int64   `json:"minCreatedAt,omitempty" jsonschema:"Earliest creation time (unix timestamp)"`
	MaxCreatedAt *int64   `json:"maxCreatedAt,omitempty" jsonschema:"Latest creation time (unix timestamp)"`
	SortBy       string   `json:"sortBy,omitempty" jsonschema:"Field to sort by (e.g. marketCapUsd, liquidityUsd, createdAt)"`
	SortOrder    string   `json:"sortOrder,omitempty" jsonschema:"Sort direction: asc or desc"`
	ShowAllPools *bool    `json:"showAllPools,omitempty" jsonschema:"Include every pool for each matched token"`
	LpBurn       *int     `json:"lpBurn,omitempty" jsonschema:"Minimum LP burn percentage"`
	Market       string   `json:"market,omitempty" jsonschema:"Restrict to one market (e.g. raydium, pumpfun, orca)"`
}

// GetLatestTokensArgs lists the most recently created tokens
type GetLatestTokensArgs struct {
	Page *int `json:"page,omitempty" jsonschema:"Page number for paginated results"`
}

// GetTrendingTokensArgs lists currently trending tokens
type GetTrendingTokensArgs struct {
	// No parameters - returns the default trending window
}

// GetTrendingTokensByTimeframeArgs lists trending tokens for a timeframe
type GetTrendingTokensByTimeframeArgs struct {
	Timeframe string `json:"timeframe" jsonschema:"Trending window: 5m, 15m, 30m, 1h, 6h, 12h, or 24h"`
}

// GetTokensByVolumeArgs lists tokens ranked by trading volume
type GetTokensByVolumeArgs struct {
	Timeframe string `json:"timeframe,omitempty" jsonschema:"Volume window: 5m, 15m, 30m, 1h, 6h, 12h, or 24h"`
}

// GetTokenOverviewArgs retrieves latest, graduating, and graduated tokens
type GetTokenOverviewArgs struct {
	// No parameters - returns the combined overview
}

// GetGraduatedTokensArgs lists tokens that completed their launch curve
type GetGraduatedTokensArgs struct {
	// No parameters
}

// GetTokenPriceArgs retrieves the current price of a token
type GetTokenPriceArgs struct {
	Token        string `json:"token" jsonschema:"The token mint address (base58)"`
	PriceChanges *bool  `json:"priceChanges,omitempty" jsonschema:"Include price change percentages over standard windows"`
}

// GetMultipleTokenPricesArgs retrieves current prices for several tokens
type GetMultipleTokenPricesArgs struct {
	Tokens       string `json:"tokens" jsonschema:"Comma-separated token mint addresses"`
	PriceChanges *bool  `json:"priceChanges,omitempty" jsonschema:"Include price change percentages over standard windows"`
}

// GetPriceHistoryArgs retrieves historic price points for a token
type GetPriceHistoryArgs struct {
	Token string `json:"token" jsonschema:"The token mint address (base58)"`
}

// GetPriceAtTimestampArgs retrieves a token's price at a moment in time
type GetPriceAtTimestampArgs struct {
	Token     string `json:"token" jsonschema:"The token mint address (base58)"`
	Timestamp int64  `json:"timestamp" jsonschema:"Unix timestamp to price the token at"`
}

// GetWalletTokensArgs lists all tokens held by a wallet with values
type GetWalletTokensArgs struct {
	Owner string `json:"owner" jsonschema:"The wallet address (base58)"`
}

// GetWalletBasicArgs lists wallet holdings without price lookups
type GetWalletBasicArgs struct {
	Owner string `json:"owner" jsonschema:"The wallet address (base58)"`
}

// GetWalletTradesArgs lists the latest trades of a wallet
type GetWalletTradesArgs struct {
	Owner  string `json:"owner" jsonschema:"The wallet address (base58)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
}

// GetTradesTokenArgs lists trades for a token across all pools
type GetTradesTokenArgs struct {
	TokenAddress  string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
	Cursor        string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
	ShowMeta      *bool  `json:"showMeta,omitempty" jsonschema:"Include token metadata (name, symbol, image) per trade"`
	ParseJupiter  *bool  `json:"parseJupiter,omitempty" jsonschema:"Combine Jupiter route legs into single trade entries"`
	HideArb       *bool  `json:"hideArb,omitempty" jsonschema:"Hide arbitrage and MEV transactions"`
	SortDirection string `json:"sortDirection,omitempty" jsonschema:"Sort by time: ASC or DESC (default DESC)"`
}

// GetTradesTokenPoolArgs lists trades for a specific token pool
type GetTradesTokenPoolArgs struct {
	TokenAddress  string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
	PoolAddress   string `json:"poolAddress" jsonschema:"The liquidity pool address (base58)"`
	Cursor        string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
	ShowMeta      *bool  `json:"showMeta,omitempty" jsonschema:"Include token metadata (name, symbol, image) per trade"`
	ParseJupiter  *bool  `json:"parseJupiter,omitempty" jsonschema:"Combine Jupiter route legs into single trade entries"`
	HideArb       *bool  `json:"hideArb,omitempty" jsonschema:"Hide arbitrage and MEV transactions"`
	SortDirection string `json:"sortDirection,omitempty" jsonschema:"Sort by time: ASC or DESC (default DESC)"`
}

// GetTradesTokenPoolWalletArgs lists a wallet's trades in one pool
type GetTradesTokenPoolWalletArgs struct {
	TokenAddress  string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
	PoolAddress   string `json:"poolAddress" jsonschema:"The liquidity pool address (base58)"`
	Owner         string `json:"owner" jsonschema:"The wallet address (base58)"`
	Cursor        string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
	ShowMeta      *bool  `json:"showMeta,omitempty" jsonschema:"Include token metadata (name, symbol, image) per trade"`
	ParseJupiter  *bool  `json:"parseJupiter,omitempty" jsonschema:"Combine Jupiter route legs into single trade entries"`
	HideArb       *bool  `json:"hideArb,omitempty" jsonschema:"Hide arbitrage and MEV transactions"`
	SortDirection string `json:"sortDirection,omitempty" jsonschema:"Sort by time: ASC or DESC (default DESC)"`
}

// GetTradesTokenWalletArgs lists a wallet's trades for a token
type GetTradesTokenWalletArgs struct {
	TokenAddress  string `json:"tokenAddress" jsonschema:"The token mint address (base58)"`
	Owner         string `json:"owner" jsonschema:"The wallet address (base58)"`
	Cursor        string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
	ShowMeta      *bool  `json:"showMeta,omitempty" jsonschema:"Include token metadata (name, symbol, image) per trade"`
	ParseJupiter  *bool  `json:"parseJupiter,omitempty" jsonschema:"Combine Jupiter route legs into single trade entries"`
	HideArb       *bool  `json:"hideArb,omitempty" jsonschema:"Hide arbitrage and MEV transactions"`
	SortDirection string `json:"sortDirection,omitempty" jsonschema:"Sort by time: ASC or DESC (default DESC)"`
}

// GetChartDataArgs retrieves OHLCV candles for a token
type GetChartDataArgs struct {
	Token          string `json:"token" jsonschema:"The token mint address (base58)"`
	Type           string `json:"type,omitempty" jsonschema:"Candle interval: 1s..1mn (e.g. 1m, 15m, 1h, 1d)"`
	TimeFrom       *int64 `json:"time_from,omitempty" jsonschema:"Range start (unix timestamp)"`
	TimeTo         *int64 `json:"time_to,omitempty" jsonschema:"Range end (unix timestamp)"`
	MarketCap      *bool  `json:"marketCap,omitempty" jsonschema:"Return market cap candles instead of price"`
	RemoveOutliers *bool  `json:"removeOutliers,omitempty" jsonschema:"Filter outlier candles (default true)"`
}

// GetChartDataByPoolArgs retrieves OHLCV candles for a specific pool
type GetChartDataByPoolArgs struct {
	Token          string `json:"token" jsonschema:"The token mint address (base58)"`
	Pool           string `json:"pool" jsonschema:"The liquidity pool address (base58)"`
	Type           string `json:"type,omitempty" jsonschema:"Candle interval: 1s..1mn (e.g. 1m, 15m, 1h, 1d)"`
	TimeFrom       *int64 `json:"time_from,omitempty" jsonschema:"Range start (unix timestamp)"`
	TimeTo         *int64 `json:"time_to,omitempty" jsonschema:"Range end (unix timestamp)"`
	MarketCap      *bool  `json:"marketCap,omitempty" jsonschema:"Return market cap candles instead of price"`
	RemoveOutliers *bool  `json:"removeOutliers,omitempty" jsonschema:"Filter outlier candles (default true)"`
}

// GetPnlWalletArgs retrieves profit-and-loss for every token in a wallet
type GetPnlWalletArgs struct {
	Wallet          string `json:"wallet" jsonschema:"The wallet address (base58)"`
	ShowHistoricPnL *bool  `json:"showHistoricPnL,omitempty" jsonschema:"Include historic PnL windows (24h, 7d, 30d)"`
	HoldingCheck    *bool  `json:"holdingCheck,omitempty" jsonschema:"Re-verify current holdings before computing PnL"`
	HideDetails     *bool  `json:"hideDetails,omitempty" jsonschema:"Return only the summary, omitting per-token entries"`
}

// GetPnlTokenArgs retrieves a wallet's PnL for one token
type GetPnlTokenArgs struct {
	Wallet string `json:"wallet" jsonschema:"The wallet address (base58)"`
	Token  string `json:"token" jsonschema:"The token mint address (base58)"`
}

// GetFirstBuyersArgs lists the first buyers of a token with their PnL
type GetFirstBuyersArgs struct {
	Token string `json:"token" jsonschema:"The token mint address (base58)"`
}

// GetTopTradersAllArgs lists the most profitable traders across all tokens
type GetTopTradersAllArgs struct {
	ExpandPnl *bool  `json:"expandPnl,omitempty" jsonschema:"Include full PnL details per trader"`
	SortBy    string `json:"sortBy,omitempty" jsonschema:"Sort field: total or winPercentage"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number for paginated results"`
}

// GetTopTradersTokenArgs lists the top traders for one token
type GetTopTradersTokenArgs struct {
	Token string `json:"token" jsonschema:"The token mint address (base58)"`
}

// GetStatsTokenArgs retrieves trading stats for a token over all windows
type GetStatsTokenArgs struct {
	Token string `json:"token" jsonschema:"The token mint address (base58)"`
}

// GetStatsTokenPoolArgs retrieves trading stats for a specific pool
type GetStatsTokenPoolArgs struct {
	Token string `json:"token" jsonschema:"The token mint address (base58)"`
	Pool  string `json:"pool" jsonschema:"The liquidity pool address (base58)"`
}
