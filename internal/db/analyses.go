package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRepository handles analysis database operations.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new analysis.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *Analysis) error {
	query := `
		INSERT INTO analyses (id, playlist_id, playlist_name, user_id, primary_mood, confidence,
			distribution, tracks_analyzed, method, diagnostics, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx, query,
		analysis.ID,
		analysis.PlaylistID,
		analysis.PlaylistName,
		analysis.UserID,
		analysis.PrimaryMood,
		analysis.Confidence,
		analysis.Distribution,
		analysis.TracksAnalyzed,
		analysis.Method,
		analysis.Diagnostics,
		analysis.Fingerprint,
	).Scan(&analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

// Get retrieves an analysis by ID.
func (r *AnalysisRepository) Get(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	query := `
		SELECT id, playlist_id, playlist_name, user_id, primary_mood, confidence,
			distribution, tracks_analyzed, method, diagnostics, fingerprint, created_at
		FROM analyses
		WHERE id = $1
	`
	return r.queryOne(ctx, query, id)
}

// GetLatest retrieves the most recent analysis for a playlist.
func (r *AnalysisRepository) GetLatest(ctx context.Context, playlistID string) (*Analysis, error) {
	query := `
		SELECT id, playlist_id, playlist_name, user_id, primary_mood, confidence,
			distribution, tracks_analyzed, method, diagnostics, fingerprint, created_at
		FROM analyses
		WHERE playlist_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.queryOne(ctx, query, playlistID)
}

// GetByFingerprint retrieves the most recent analysis matching a
// content fingerprint.
func (r *AnalysisRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*Analysis, error) {
	query := `
		SELECT id, playlist_id, playlist_name, user_id, primary_mood, confidence,
			distribution, tracks_analyzed, method, diagnostics, fingerprint, created_at
		FROM analyses
		WHERE fingerprint = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.queryOne(ctx, query, fingerprint)
}

// GetForPlaylist retrieves recent analyses for a playlist, newest first.
func (r *AnalysisRepository) GetForPlaylist(ctx context.Context, playlistID string, limit int) ([]Analysis, error) {
	query := `
		SELECT id, playlist_id, playlist_name, user_id, primary_mood, confidence,
			distribution, tracks_analyzed, method, diagnostics, fingerprint, created_at
		FROM analyses
		WHERE playlist_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, playlistID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying playlist analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		if err := scanAnalysis(rows, &a); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// Stats summarizes all stored analyses.
func (r *AnalysisRepository) Stats(ctx context.Context) (*AnalysisStats, error) {
	var stats AnalysisStats

	totalsQuery := `
		SELECT COUNT(*), COUNT(DISTINCT playlist_id), COALESCE(AVG(confidence), 0)
		FROM analyses
	`
	err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalAnalyses,
		&stats.UniquePlaylists,
		&stats.AverageConfidence,
	)
	if err != nil {
		return nil, fmt.Errorf("querying analysis totals: %w", err)
	}

	moodsQuery := `
		SELECT primary_mood, COUNT(*)
		FROM analyses
		GROUP BY primary_mood
		ORDER BY COUNT(*) DESC, primary_mood
	`
	rows, err := r.pool.Query(ctx, moodsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying mood counts: %w", err)
	}
	for rows.Next() {
		var mc MoodCount
		if err := rows.Scan(&mc.Mood, &mc.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning mood count: %w", err)
		}
		stats.MoodCounts = append(stats.MoodCounts, mc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading mood counts: %w", err)
	}

	methodsQuery := `
		SELECT method, COUNT(*)
		FROM analyses
		GROUP BY method
		ORDER BY COUNT(*) DESC, method
	`
	rows, err = r.pool.Query(ctx, methodsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying method counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mc MethodCount
		if err := rows.Scan(&mc.Method, &mc.Count); err != nil {
			return nil, fmt.Errorf("scanning method count: %w", err)
		}
		stats.MethodCounts = append(stats.MethodCounts, mc)
	}
	return &stats, rows.Err()
}

// DeleteForPlaylist removes all analyses for a playlist.
func (r *AnalysisRepository) DeleteForPlaylist(ctx context.Context, playlistID string) error {
	query := `DELETE FROM analyses WHERE playlist_id = $1`
	_, err := r.pool.Exec(ctx, query, playlistID)
	if err != nil {
		return fmt.Errorf("deleting playlist analyses: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) queryOne(ctx context.Context, query string, arg any) (*Analysis, error) {
	var a Analysis
	err := scanAnalysis(r.pool.QueryRow(ctx, query, arg), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanAnalysis reads one analysis row; works for both QueryRow and Query.
func scanAnalysis(row pgx.Row, a *Analysis) error {
	err := row.Scan(
		&a.ID,
		&a.PlaylistID,
		&a.PlaylistName,
		&a.UserID,
		&a.PrimaryMood,
		&a.Confidence,
		&a.Distribution,
		&a.TracksAnalyzed,
		&a.Method,
		&a.Diagnostics,
		&a.Fingerprint,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scanning analysis: %w", err)
	}
	return nil
}
