package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/time/rate"
)

const (
	userAgent = "playlist-mood-analyzer/1.0"

	// requestSpacing paces provider requests; lyric APIs are strict
	// about bursts.
	requestSpacing = 200 * time.Millisecond

	// matchThreshold is the minimum title/artist similarity for a
	// search hit to count as the right song.
	matchThreshold = 0.7
)

// Sentinel errors.
var (
	// ErrRateLimited is returned when the provider rate limit is
	// exceeded after retries.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidAPIKey is returned when the provider rejects the key.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// errNotFound flows internally when the provider has no lyrics;
	// GetLyrics converts it into a cacheable empty result.
	errNotFound = errors.New("lyrics not found")
)

// featMarkers and versionSuffix strip featured-artist and remix
// decorations from track titles before searching, since providers
// index the plain song name.
var (
	featMarkers   = regexp.MustCompile(`(?i)\s*[(\[]\s*(?:feat|ft|featuring)\.?[^)\]]*[)\]]`)
	versionSuffix = regexp.MustCompile(`(?i)\s*-\s*[^-]*(?:remix|version|edit|remaster(?:ed)?|live|mono|stereo|deluxe)[^-]*$`)
)

// Client is a lyric provider API client with request pacing, retry,
// and an in-memory cache. Provider misses are cached as empty lyrics
// so the same absent song is never fetched twice.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	similarity *metrics.JaroWinkler

	// cache key = "{artist}|{title}" normalized
	cache   map[string]Lyric
	cacheMu sync.RWMutex
}

// NewClient creates a lyric provider client from configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter:    rate.NewLimiter(rate.Every(requestSpacing), 1),
		similarity: metrics.NewJaroWinkler(),
		cache:      make(map[string]Lyric),
	}
}

// GetLyrics searches the provider for a song and retrieves its lyrics.
// A song the provider does not know yields an empty Lyric and no
// error; transport and authorization failures surface as errors.
func (c *Client) GetLyrics(ctx context.Context, artist, title string) (Lyric, error) {
	key := cacheKey(artist, title)

	c.cacheMu.RLock()
	if cached, ok := c.cache[key]; ok {
		c.cacheMu.RUnlock()
		return cached, nil
	}
	c.cacheMu.RUnlock()

	lyric, err := c.lookup(ctx, artist, title)
	if errors.Is(err, errNotFound) {
		c.store(key, Lyric{})
		return Lyric{}, nil
	}
	if err != nil {
		return Lyric{}, err
	}

	c.store(key, lyric)
	return lyric, nil
}

// lookup runs the search-then-fetch sequence against the provider.
func (c *Client) lookup(ctx context.Context, artist, title string) (Lyric, error) {
	hit, err := c.search(ctx, artist, title)
	if err != nil {
		return Lyric{}, err
	}
	return c.fetchLyrics(ctx, hit)
}

// search queries the provider and ranks the hits against the wanted
// artist and title. No hit above the similarity threshold counts as
// not found.
func (c *Client) search(ctx context.Context, artist, title string) (searchHit, error) {
	params := url.Values{
		"artist": {artist},
		"title":  {normalizeTitle(title)},
	}

	body, err := c.doRequest(ctx, "/search?"+params.Encode())
	if err != nil {
		return searchHit{}, fmt.Errorf("searching lyrics: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return searchHit{}, fmt.Errorf("parsing search response: %w", err)
	}

	hit, ok := c.bestMatch(resp.Results, artist, title)
	if !ok {
		return searchHit{}, errNotFound
	}
	return hit, nil
}

// bestMatch picks the search hit most similar to the wanted song.
func (c *Client) bestMatch(hits []searchHit, artist, title string) (searchHit, bool) {
	wantArtist := strings.ToLower(strings.TrimSpace(artist))
	wantTitle := normalizeTitle(title)

	var best searchHit
	bestScore := 0.0

	for _, h := range hits {
		titleScore := strutil.Similarity(normalizeTitle(h.Title), wantTitle, c.similarity)
		artistScore := strutil.Similarity(strings.ToLower(strings.TrimSpace(h.Artist)), wantArtist, c.similarity)
		score := (titleScore + artistScore) / 2

		if score > bestScore {
			best = h
			bestScore = score
		}
	}

	if bestScore < matchThreshold {
		return searchHit{}, false
	}
	return best, true
}

// fetchLyrics retrieves the lyric text for a matched song.
func (c *Client) fetchLyrics(ctx context.Context, hit searchHit) (Lyric, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/lyrics/%d", hit.ID))
	if err != nil {
		return Lyric{}, fmt.Errorf("fetching lyrics: %w", err)
	}

	var resp lyricsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Lyric{}, fmt.Errorf("parsing lyrics response: %w", err)
	}

	if resp.Lyrics == "" {
		return Lyric{}, errNotFound
	}

	language := resp.Language
	if language == "" {
		language = hit.Language
	}

	return Lyric{Text: resp.Lyrics, Language: language}, nil
}

// doRequest performs an HTTP GET with retry on rate limiting.
// Retries up to 3 times with exponential backoff (1s, 2s, 4s).
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	delays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
	var lastErr error

	for attempt := 0; attempt <= len(delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}

		body, err := c.doSingleRequest(ctx, path)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, ErrRateLimited) {
			lastErr = err
			continue
		}

		return nil, err
	}

	return nil, lastErr
}

// doSingleRequest performs a single paced HTTP request.
func (c *Client) doSingleRequest(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidAPIKey
	default:
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

func (c *Client) store(key string, lyric Lyric) {
	c.cacheMu.Lock()
	c.cache[key] = lyric
	c.cacheMu.Unlock()
}

func cacheKey(artist, title string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + "|" + normalizeTitle(title)
}

// normalizeTitle lowercases a title and strips featured-artist markers
// and version suffixes.
func normalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = featMarkers.ReplaceAllString(t, "")
	t = versionSuffix.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}
