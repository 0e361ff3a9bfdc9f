package lyrics

import (
	"errors"
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		wantKey string
		wantURL string
		wantErr error
	}{
		{
			name:    "valid configuration",
			apiKey:  "abc123def456",
			baseURL: "https://lyrics.example.com/v1",
			wantKey: "abc123def456",
			wantURL: "https://lyrics.example.com/v1",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			baseURL: "https://lyrics.example.com/v1",
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "missing base URL",
			apiKey:  "abc123def456",
			baseURL: "",
			wantErr: ErrMissingBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore env vars
			originalKey := os.Getenv("LYRICS_API_KEY")
			originalURL := os.Getenv("LYRICS_API_URL")
			defer os.Setenv("LYRICS_API_KEY", originalKey)
			defer os.Setenv("LYRICS_API_URL", originalURL)

			if tt.apiKey == "" {
				os.Unsetenv("LYRICS_API_KEY")
			} else {
				os.Setenv("LYRICS_API_KEY", tt.apiKey)
			}
			if tt.baseURL == "" {
				os.Unsetenv("LYRICS_API_URL")
			} else {
				os.Setenv("LYRICS_API_URL", tt.baseURL)
			}

			cfg, err := LoadConfig()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr == nil {
				if cfg == nil {
					t.Fatal("LoadConfig() returned nil config with no error")
				}
				if cfg.APIKey != tt.wantKey {
					t.Errorf("LoadConfig() APIKey = %v, want %v", cfg.APIKey, tt.wantKey)
				}
				if cfg.BaseURL != tt.wantURL {
					t.Errorf("LoadConfig() BaseURL = %v, want %v", cfg.BaseURL, tt.wantURL)
				}
			} else {
				if cfg != nil {
					t.Errorf("LoadConfig() returned non-nil config with error")
				}
			}
		})
	}
}
