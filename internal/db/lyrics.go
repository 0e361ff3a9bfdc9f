package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LyricRepository handles cached lyric database operations.
type LyricRepository struct {
	pool *pgxpool.Pool
}

// UpsertBatch inserts or updates multiple lyric rows efficiently.
func (r *LyricRepository) UpsertBatch(ctx context.Context, lyrics []Lyric) error {
	if len(lyrics) == 0 {
		return nil
	}

	query := `
		INSERT INTO track_lyrics (track_id, artist, title, body, language, fetched_at)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::timestamptz[])
		ON CONFLICT (track_id) DO UPDATE SET
			artist = EXCLUDED.artist,
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			language = EXCLUDED.language,
			fetched_at = EXCLUDED.fetched_at
	`

	trackIDs := make([]string, len(lyrics))
	artists := make([]string, len(lyrics))
	titles := make([]string, len(lyrics))
	bodies := make([]string, len(lyrics))
	languages := make([]string, len(lyrics))
	fetchedAts := make([]time.Time, len(lyrics))

	for i, l := range lyrics {
		trackIDs[i] = l.TrackID
		artists[i] = l.Artist
		titles[i] = l.Title
		bodies[i] = l.Body
		languages[i] = l.Language
		fetchedAts[i] = l.FetchedAt
	}

	_, err := r.pool.Exec(ctx, query, trackIDs, artists, titles, bodies, languages, fetchedAts)
	if err != nil {
		return fmt.Errorf("batch upserting lyrics: %w", err)
	}
	return nil
}

// GetForTracks retrieves cached lyrics for multiple tracks, returning a
// map of track ID to lyric row. Tracks with no row are absent from the
// map.
func (r *LyricRepository) GetForTracks(ctx context.Context, trackIDs []string) (map[string]Lyric, error) {
	if len(trackIDs) == 0 {
		return make(map[string]Lyric), nil
	}

	query := `
		SELECT track_id, artist, title, body, language, fetched_at
		FROM track_lyrics
		WHERE track_id = ANY($1)
	`
	rows, err := r.pool.Query(ctx, query, trackIDs)
	if err != nil {
		return nil, fmt.Errorf("querying track lyrics: %w", err)
	}
	defer rows.Close()

	result := make(map[string]Lyric)
	for rows.Next() {
		var l Lyric
		if err := rows.Scan(
			&l.TrackID,
			&l.Artist,
			&l.Title,
			&l.Body,
			&l.Language,
			&l.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lyric: %w", err)
		}
		result[l.TrackID] = l
	}
	return result, rows.Err()
}

// Count returns the number of cached lyric rows with text, excluding
// recorded provider misses.
func (r *LyricRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM track_lyrics WHERE body <> ''`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting lyrics: %w", err)
	}
	return count, nil
}

// DeleteStale removes lyric rows fetched before the given time,
// returning how many were removed.
func (r *LyricRepository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM track_lyrics WHERE fetched_at < $1`
	result, err := r.pool.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("deleting stale lyrics: %w", err)
	}
	return result.RowsAffected(), nil
}
