package tracker

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the Solana Tracker public data API endpoint
	DefaultBaseURL = "https://data.solanatracker.io"

	// DefaultTimeout bounds every upstream request
	DefaultTimeout = 30 * time.Second
)

// Config holds Solana Tracker connection settings
type Config struct {
	// APIKey is sent as the x-api-key header on every request
	APIKey string

	// BaseURL is the data API endpoint
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// A missing API key is a startup-time fatal condition, not a runtime error.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("SOLANA_TRACKER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("SOLANA_TRACKER_API_KEY environment variable is required")
	}

	baseURL := os.Getenv("SOLANA_TRACKER_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("SOLANA_TRACKER_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("SOLANA_TRACKER_USER_AGENT")
	if userAgent == "" {
		userAgent = "solana-data-mcp-server/1.0"
	}

	return &Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
