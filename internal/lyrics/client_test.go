package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetLyrics(t *testing.T) {
	tests := []struct {
		name         string
		artist       string
		title        string
		searchStatus int
		searchResp   searchResponse
		lyricsResp   lyricsResponse
		wantText     string
		wantLang     string
		wantErr      error
	}{
		{
			name:   "match found",
			artist: "Queen",
			title:  "Bohemian Rhapsody",
			searchResp: searchResponse{Results: []searchHit{
				{ID: 42, Title: "Bohemian Rhapsody", Artist: "Queen", Language: "en"},
			}},
			lyricsResp: lyricsResponse{Lyrics: "Is this the real life", Language: "en"},
			wantText:   "Is this the real life",
			wantLang:   "en",
		},
		{
			name:   "decorated title still matches",
			artist: "Queen",
			title:  "Bohemian Rhapsody (feat. Nobody) - 2011 Remaster",
			searchResp: searchResponse{Results: []searchHit{
				{ID: 42, Title: "Bohemian Rhapsody", Artist: "Queen", Language: "en"},
			}},
			lyricsResp: lyricsResponse{Lyrics: "Is this the real life"},
			wantText:   "Is this the real life",
			wantLang:   "en", // falls back to the search hit's language
		},
		{
			name:       "no search results",
			artist:     "Queen",
			title:      "Bohemian Rhapsody",
			searchResp: searchResponse{Results: []searchHit{}},
		},
		{
			name:   "all hits below similarity threshold",
			artist: "Queen",
			title:  "Bohemian Rhapsody",
			searchResp: searchResponse{Results: []searchHit{
				{ID: 7, Title: "zzz xxx yyy", Artist: "qqq www"},
			}},
		},
		{
			name:         "provider has no such song",
			artist:       "Queen",
			title:        "Bohemian Rhapsody",
			searchStatus: http.StatusNotFound,
		},
		{
			name:         "invalid API key",
			artist:       "Queen",
			title:        "Bohemian Rhapsody",
			searchStatus: http.StatusUnauthorized,
			wantErr:      ErrInvalidAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				switch {
				case r.URL.Path == "/search":
					if tt.searchStatus != 0 {
						w.WriteHeader(tt.searchStatus)
						return
					}
					json.NewEncoder(w).Encode(tt.searchResp)
				case strings.HasPrefix(r.URL.Path, "/lyrics/"):
					json.NewEncoder(w).Encode(tt.lyricsResp)
				default:
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
			}))
			defer server.Close()

			client := NewClient(&Config{APIKey: "test-api-key", BaseURL: server.URL})

			lyric, err := client.GetLyrics(context.Background(), tt.artist, tt.title)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetLyrics() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}

			if lyric.Text != tt.wantText {
				t.Errorf("GetLyrics() text = %q, want %q", lyric.Text, tt.wantText)
			}
			if lyric.Language != tt.wantLang {
				t.Errorf("GetLyrics() language = %q, want %q", lyric.Language, tt.wantLang)
			}
			if lyric.Found() != (tt.wantText != "") {
				t.Errorf("Found() = %v, want %v", lyric.Found(), tt.wantText != "")
			}
		})
	}
}

func TestGetLyrics_NegativeCaching(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{Results: []searchHit{}})
	}))
	defer server.Close()

	client := NewClient(&Config{APIKey: "test-api-key", BaseURL: server.URL})

	// First call hits the provider and misses.
	lyric, err := client.GetLyrics(context.Background(), "Artist", "Unknown Song")
	if err != nil {
		t.Fatalf("First GetLyrics() error = %v", err)
	}
	if lyric.Found() {
		t.Fatalf("First GetLyrics() = %+v, want empty", lyric)
	}

	// Second call must be served from the negative cache.
	lyric, err = client.GetLyrics(context.Background(), "Artist", "Unknown Song")
	if err != nil {
		t.Fatalf("Second GetLyrics() error = %v", err)
	}
	if lyric.Found() {
		t.Fatalf("Second GetLyrics() = %+v, want empty", lyric)
	}

	if count := requestCount.Load(); count != 1 {
		t.Errorf("Expected 1 request, got %d", count)
	}
}

func TestGetLyrics_CachesAcrossTitleVariants(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search":
			json.NewEncoder(w).Encode(searchResponse{Results: []searchHit{
				{ID: 1, Title: "Song", Artist: "Artist", Language: "en"},
			}})
		case strings.HasPrefix(r.URL.Path, "/lyrics/"):
			json.NewEncoder(w).Encode(lyricsResponse{Lyrics: "la la la", Language: "en"})
		}
	}))
	defer server.Close()

	client := NewClient(&Config{APIKey: "test-api-key", BaseURL: server.URL})

	// Search plus lyric fetch.
	if _, err := client.GetLyrics(context.Background(), "Artist", "Song (feat. Guest)"); err != nil {
		t.Fatalf("First GetLyrics() error = %v", err)
	}
	if count := requestCount.Load(); count != 2 {
		t.Fatalf("Expected 2 requests after first call, got %d", count)
	}

	// A different decoration of the same title normalizes to the same
	// cache key.
	lyric, err := client.GetLyrics(context.Background(), "Artist", "Song - Radio Edit")
	if err != nil {
		t.Fatalf("Second GetLyrics() error = %v", err)
	}
	if lyric.Text != "la la la" {
		t.Errorf("Second GetLyrics() text = %q, want cached %q", lyric.Text, "la la la")
	}
	if count := requestCount.Load(); count != 2 {
		t.Errorf("Expected no further requests, got %d total", count)
	}
}

func TestGetLyrics_RateLimitRetry(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)

		// Fail first 2 requests with rate limit, succeed afterwards
		if count < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search":
			json.NewEncoder(w).Encode(searchResponse{Results: []searchHit{
				{ID: 1, Title: "Song", Artist: "Artist", Language: "en"},
			}})
		case strings.HasPrefix(r.URL.Path, "/lyrics/"):
			json.NewEncoder(w).Encode(lyricsResponse{Lyrics: "la la la"})
		}
	}))
	defer server.Close()

	client := NewClient(&Config{APIKey: "test-api-key", BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lyric, err := client.GetLyrics(ctx, "Artist", "Song")
	if err != nil {
		t.Fatalf("GetLyrics() error = %v", err)
	}
	if lyric.Text != "la la la" {
		t.Errorf("GetLyrics() text = %q, want %q", lyric.Text, "la la la")
	}

	// 2 rate limited + 1 search success + 1 lyrics success
	if count := requestCount.Load(); count != 4 {
		t.Errorf("Expected 4 requests, got %d", count)
	}
}

func TestGetLyrics_RateLimitExhausted(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(&Config{APIKey: "test-api-key", BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.GetLyrics(ctx, "Artist", "Song")

	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("GetLyrics() error = %v, want ErrRateLimited", err)
	}

	// 1 initial + 3 retries
	if count := requestCount.Load(); count != 4 {
		t.Errorf("Expected 4 requests, got %d", count)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Bohemian Rhapsody", "bohemian rhapsody"},
		{"  Karma Police  ", "karma police"},
		{"Umbrella (feat. Jay-Z)", "umbrella"},
		{"Umbrella [featuring Jay-Z]", "umbrella"},
		{"One More Time (ft. Nobody)", "one more time"},
		{"Song - Radio Edit", "song"},
		{"Song - 2011 Remaster", "song"},
		{"Song - Remastered 2009", "song"},
		{"Tiny Dancer - Live At The Royal Albert Hall", "tiny dancer"},
		{"Song (feat. Guest) - Club Remix", "song"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := normalizeTitle(tt.title); got != tt.want {
				t.Errorf("normalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(&Config{APIKey: "test-key", BaseURL: "https://lyrics.example.com/"})

	if client.apiKey != "test-key" {
		t.Errorf("NewClient() apiKey = %s, want test-key", client.apiKey)
	}
	if client.baseURL != "https://lyrics.example.com" {
		t.Errorf("NewClient() baseURL = %s, want trailing slash trimmed", client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("NewClient() httpClient is nil")
	}
	if client.limiter == nil {
		t.Error("NewClient() limiter is nil")
	}
	if client.cache == nil {
		t.Error("NewClient() cache is nil")
	}
}
