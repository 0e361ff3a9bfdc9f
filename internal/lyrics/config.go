package lyrics

import (
	"errors"
	"os"
)

// Configuration errors. A missing lyric provider is not fatal to the
// application; callers treat it as lyric enrichment being disabled.
var (
	ErrMissingAPIKey  = errors.New("missing LYRICS_API_KEY environment variable")
	ErrMissingBaseURL = errors.New("missing LYRICS_API_URL environment variable")
)

// Config holds lyric provider configuration.
type Config struct {
	APIKey  string
	BaseURL string
}

// LoadConfig reads lyric provider configuration from environment
// variables.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("LYRICS_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := os.Getenv("LYRICS_API_URL")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return &Config{APIKey: apiKey, BaseURL: baseURL}, nil
}
