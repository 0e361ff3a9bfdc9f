package lyrics

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/justestif/go-playlist-mood-analyzer/internal/db"
)

// CacheTTL is the duration after which cached lyrics are considered stale.
const CacheTTL = 7 * 24 * time.Hour // 7 days

// CachedFetcher implements LyricFetcher with database persistence.
// It checks the database cache first, then fetches cache misses from
// the provider through a concurrent Service, persisting new results.
// Provider misses are persisted with an empty body so known-absent
// songs are not refetched until the row goes stale.
type CachedFetcher struct {
	db      *db.DB
	client  *Client
	service *Service
}

// NewCachedFetcher creates a CachedFetcher that wraps the provider
// client with PostgreSQL persistence.
func NewCachedFetcher(database *db.DB, client *Client) *CachedFetcher {
	return &CachedFetcher{
		db:      database,
		client:  client,
		service: NewService(client),
	}
}

// GetLyrics fetches lyrics for a single song directly from the provider.
// It implements the LyricFetcher interface; batch lookups should use
// GetForTracks, which consults the database cache.
func (c *CachedFetcher) GetLyrics(ctx context.Context, artist, title string) (Lyric, error) {
	return c.client.GetLyrics(ctx, artist, title)
}

// GetForTracks fetches lyrics for multiple tracks with caching.
// It checks the database cache first, identifies cache misses and stale
// entries, fetches missing/stale lyrics from the provider, and persists
// the results.
func (c *CachedFetcher) GetForTracks(ctx context.Context, tracks []Track) (map[string]Lyric, error) {
	if len(tracks) == 0 {
		return make(map[string]Lyric), nil
	}

	trackIDs := make([]string, len(tracks))
	trackByID := make(map[string]Track, len(tracks))
	for i, t := range tracks {
		trackIDs[i] = t.ID
		trackByID[t.ID] = t
	}

	cached, err := c.db.Lyrics().GetForTracks(ctx, trackIDs)
	if err != nil {
		return nil, fmt.Errorf("getting cached lyrics: %w", err)
	}

	result := make(map[string]Lyric, len(tracks))
	var needsFetch []Track
	staleThreshold := time.Now().Add(-CacheTTL)

	for _, id := range trackIDs {
		row, found := cached[id]
		if !found || row.FetchedAt.Before(staleThreshold) {
			needsFetch = append(needsFetch, trackByID[id])
			continue
		}

		// A fresh row with an empty body is a known provider miss.
		result[id] = Lyric{Text: row.Body, Language: row.Language}
	}

	if len(needsFetch) > 0 {
		fetched, err := c.fetchAndPersist(ctx, needsFetch)
		if err != nil {
			log.Printf("lyric fetch incomplete: %v", err)
		}
		for id, lyric := range fetched {
			result[id] = lyric
		}
	}

	return result, nil
}

// fetchAndPersist fetches lyrics from the provider concurrently and
// persists them to the database, including empty results for songs the
// provider does not know.
func (c *CachedFetcher) fetchAndPersist(ctx context.Context, tracks []Track) (map[string]Lyric, error) {
	fetched, err := c.service.FetchForTracks(ctx, tracks)

	result := make(map[string]Lyric, len(tracks))
	var rows []db.Lyric
	now := time.Now()

	for i, tl := range fetched {
		if tl.Error != nil {
			// Skip this track but continue with others
			continue
		}

		t := tracks[i]
		result[t.ID] = tl.Lyric
		rows = append(rows, db.Lyric{
			TrackID:   t.ID,
			Artist:    t.Artist,
			Title:     t.Title,
			Body:      tl.Lyric.Text,
			Language:  tl.Lyric.Language,
			FetchedAt: now,
		})
	}

	if err != nil {
		// Context is gone; report what completed without persisting.
		return result, err
	}

	if len(rows) > 0 {
		if err := c.db.Lyrics().UpsertBatch(ctx, rows); err != nil {
			return result, fmt.Errorf("persisting lyrics: %w", err)
		}
	}

	return result, nil
}
