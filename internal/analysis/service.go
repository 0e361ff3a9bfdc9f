// Package analysis orchestrates playlist mood analysis: fetching
// playlist data from Spotify, scoring it with the mood engine, and
// persisting results.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-playlist-mood-analyzer/internal/db"
	"github.com/justestif/go-playlist-mood-analyzer/internal/lyrics"
	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
	"github.com/justestif/go-playlist-mood-analyzer/internal/spotify"
)

// Common errors.
var (
	// ErrAnalysisTooRecent is returned when a playlist was analyzed
	// within the cooldown period and the content has changed since.
	ErrAnalysisTooRecent = errors.New("analysis attempted too recently")
)

const (
	// DefaultCooldown is the minimum time between analyses of the same
	// playlist when its content changed.
	DefaultCooldown = 1 * time.Minute

	// DefaultFreshness is how long a stored analysis with an identical
	// content fingerprint is served instead of recomputed.
	DefaultFreshness = 1 * time.Hour
)

// PlaylistFetcher abstracts the Spotify client for testing.
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context, playlistID string) (*spotify.Playlist, []spotify.Track, error)
	FetchAudioFeatures(ctx context.Context, trackIDs []string) (map[string]*mood.AudioFeatures, error)
	FetchArtistGenres(ctx context.Context, artistIDs []string) (map[string][]string, error)
}

var _ PlaylistFetcher = (*spotify.Client)(nil)

// LyricProvider supplies lyrics for tracks, keyed by track ID.
type LyricProvider interface {
	GetForTracks(ctx context.Context, tracks []lyrics.Track) (map[string]lyrics.Lyric, error)
}

var _ LyricProvider = (*lyrics.CachedFetcher)(nil)

// Service handles analysis runs and their persistence.
type Service struct {
	db         *db.DB
	classifier *mood.Classifier
	lyrics     LyricProvider // nil disables lyric enrichment
	cooldown   time.Duration
	freshness  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLyricProvider enables enhanced-mode lyric fetching.
func WithLyricProvider(p LyricProvider) Option {
	return func(s *Service) { s.lyrics = p }
}

// WithCooldown sets the minimum time between analyses of a changed
// playlist.
func WithCooldown(d time.Duration) Option {
	return func(s *Service) { s.cooldown = d }
}

// WithFreshness sets how long identical-content analyses are reused.
func WithFreshness(d time.Duration) Option {
	return func(s *Service) { s.freshness = d }
}

// New creates a new analysis service.
func New(database *db.DB, classifier *mood.Classifier, opts ...Option) *Service {
	s := &Service{
		db:         database,
		classifier: classifier,
		cooldown:   DefaultCooldown,
		freshness:  DefaultFreshness,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request describes one analysis invocation.
type Request struct {
	PlaylistID string
	UseLyrics  bool   // enhanced mode
	Force      bool   // bypass reuse and cooldown
	UserID     string // empty for CLI runs
}

// Result is the outcome of an analysis, fresh or served from storage.
type Result struct {
	AnalysisID   uuid.UUID
	PlaylistID   string
	PlaylistName string
	Mood         mood.PlaylistResult
	Reused       bool // true when a stored fingerprint match was returned
	CreatedAt    time.Time
}

// Analyze runs a playlist analysis. A stored analysis whose content
// fingerprint matches the playlist's current tracks is returned as-is
// while fresh; a changed playlist inside the cooldown window yields
// ErrAnalysisTooRecent. Force bypasses both checks.
func (s *Service) Analyze(ctx context.Context, client PlaylistFetcher, req Request) (*Result, error) {
	mode := mood.ModeStandard
	if req.UseLyrics {
		mode = mood.ModeEnhanced
	}

	playlist, tracks, err := client.FetchPlaylist(ctx, req.PlaylistID)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist: %w", err)
	}

	trackIDs := make([]string, len(tracks))
	for i, t := range tracks {
		trackIDs[i] = t.ID
	}
	fp := fingerprint(playlist.ID, mode, trackIDs)

	if !req.Force {
		if reused, err := s.lookupFresh(ctx, fp); err != nil {
			return nil, err
		} else if reused != nil {
			return reused, nil
		}

		if err := s.checkCooldown(ctx, playlist.ID); err != nil {
			return nil, err
		}
	}

	signals, err := s.assembleSignals(ctx, client, tracks, mode)
	if err != nil {
		return nil, err
	}

	result, trackResults, err := s.classifier.ClassifyWithTracks(signals, mode)
	if err != nil {
		return nil, fmt.Errorf("classifying playlist: %w", err)
	}

	// Segmentation is display-only and excluded from the deterministic
	// core result; attach it before persisting.
	result.Diagnostics.MoodSegments = s.classifier.Segments(trackResults)

	analysis, err := s.persist(ctx, playlist, result, fp, req.UserID)
	if err != nil {
		return nil, err
	}

	return &Result{
		AnalysisID:   analysis.ID,
		PlaylistID:   playlist.ID,
		PlaylistName: playlist.Name,
		Mood:         result,
		CreatedAt:    analysis.CreatedAt,
	}, nil
}

// lookupFresh returns a stored result when its fingerprint matches and
// it is newer than the freshness window, nil otherwise.
func (s *Service) lookupFresh(ctx context.Context, fp string) (*Result, error) {
	stored, err := s.db.Analyses().GetByFingerprint(ctx, fp)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking stored analysis: %w", err)
	}
	if time.Since(stored.CreatedAt) >= s.freshness {
		return nil, nil
	}
	return fromStored(stored, true)
}

// checkCooldown rejects re-analysis of a playlist whose last run is
// more recent than the cooldown.
func (s *Service) checkCooldown(ctx context.Context, playlistID string) error {
	latest, err := s.db.Analyses().GetLatest(ctx, playlistID)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking latest analysis: %w", err)
	}

	nextAt := latest.CreatedAt.Add(s.cooldown)
	if time.Now().Before(nextAt) {
		return fmt.Errorf("%w: next analysis available at %s", ErrAnalysisTooRecent, nextAt.Format(time.RFC3339))
	}
	return nil
}

// assembleSignals gathers audio features, artist genres, and optional
// lyrics into the engine's per-track input.
func (s *Service) assembleSignals(ctx context.Context, client PlaylistFetcher, tracks []spotify.Track, mode mood.Mode) ([]mood.TrackSignals, error) {
	trackIDs := make([]string, len(tracks))
	var artistIDs []string
	for i, t := range tracks {
		trackIDs[i] = t.ID
		artistIDs = append(artistIDs, t.ArtistIDs...)
	}

	features, err := client.FetchAudioFeatures(ctx, trackIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching audio features: %w", err)
	}

	genresByArtist, err := client.FetchArtistGenres(ctx, artistIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching artist genres: %w", err)
	}

	lyricsByTrack := s.fetchLyrics(ctx, tracks, mode)

	signals := make([]mood.TrackSignals, len(tracks))
	for i, t := range tracks {
		lyric := lyricsByTrack[t.ID]
		signals[i] = mood.TrackSignals{
			ID:       t.ID,
			Genres:   trackGenres(t, genresByArtist),
			Audio:    features[t.ID],
			Lyrics:   lyric.Text,
			Language: lyric.Language,
		}
	}
	return signals, nil
}

// fetchLyrics pulls lyrics for enhanced mode. A provider failure
// degrades the run to metadata-only scoring rather than failing it.
func (s *Service) fetchLyrics(ctx context.Context, tracks []spotify.Track, mode mood.Mode) map[string]lyrics.Lyric {
	if mode != mood.ModeEnhanced || s.lyrics == nil {
		return nil
	}

	lookups := make([]lyrics.Track, len(tracks))
	for i, t := range tracks {
		lookups[i] = lyrics.Track{
			ID:     t.ID,
			Title:  t.Name,
			Artist: t.PrimaryArtist(),
		}
	}

	found, err := s.lyrics.GetForTracks(ctx, lookups)
	if err != nil {
		log.Printf("lyrics unavailable, continuing without: %v", err)
		return nil
	}
	return found
}

// trackGenres collects a track's genres from its artists in order,
// primary artist first, deduplicated on first occurrence.
func trackGenres(t spotify.Track, genresByArtist map[string][]string) []string {
	var genres []string
	seen := make(map[string]bool)
	for _, artistID := range t.ArtistIDs {
		for _, g := range genresByArtist[artistID] {
			if seen[g] {
				continue
			}
			seen[g] = true
			genres = append(genres, g)
		}
	}
	return genres
}

// persist stores the finished analysis and stamps the user.
func (s *Service) persist(ctx context.Context, playlist *spotify.Playlist, result mood.PlaylistResult, fp, userID string) (*db.Analysis, error) {
	distribution, err := json.Marshal(result.Distribution)
	if err != nil {
		return nil, fmt.Errorf("encoding distribution: %w", err)
	}
	diagnostics, err := json.Marshal(result.Diagnostics)
	if err != nil {
		return nil, fmt.Errorf("encoding diagnostics: %w", err)
	}

	analysis := &db.Analysis{
		PlaylistID:     playlist.ID,
		PlaylistName:   playlist.Name,
		PrimaryMood:    string(result.PrimaryMood),
		Confidence:     result.Confidence,
		Distribution:   distribution,
		TracksAnalyzed: result.TracksAnalyzed,
		Method:         string(result.Method),
		Diagnostics:    diagnostics,
		Fingerprint:    fp,
	}
	if userID != "" {
		analysis.UserID = &userID
	}

	if err := s.db.Analyses().Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("storing analysis: %w", err)
	}

	if userID != "" {
		if err := s.db.Users().UpdateLastAnalyzed(ctx, userID, analysis.CreatedAt); err != nil {
			return nil, fmt.Errorf("updating last analyzed: %w", err)
		}
	}

	return analysis, nil
}

// Latest returns the most recent stored analysis for a playlist.
func (s *Service) Latest(ctx context.Context, playlistID string) (*Result, error) {
	stored, err := s.db.Analyses().GetLatest(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return fromStored(stored, false)
}

// HistoryEntry summarizes one past analysis.
type HistoryEntry struct {
	AnalysisID     uuid.UUID
	PrimaryMood    mood.Category
	Confidence     float64
	Method         mood.Mode
	TracksAnalyzed int
	CreatedAt      time.Time
}

// History lists past analyses for a playlist, newest first.
func (s *Service) History(ctx context.Context, playlistID string, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Analyses().GetForPlaylist(ctx, playlistID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading analysis history: %w", err)
	}

	entries := make([]HistoryEntry, len(rows))
	for i, a := range rows {
		entries[i] = HistoryEntry{
			AnalysisID:     a.ID,
			PrimaryMood:    mood.Category(a.PrimaryMood),
			Confidence:     a.Confidence,
			Method:         mood.Mode(a.Method),
			TracksAnalyzed: a.TracksAnalyzed,
			CreatedAt:      a.CreatedAt,
		}
	}
	return entries, nil
}

// Stats aggregates stored analyses and cache counts.
type Stats struct {
	TotalAnalyses     int64
	UniquePlaylists   int64
	AverageConfidence float64
	MostCommonMood    mood.Category // empty when nothing analyzed yet
	MoodCounts        []db.MoodCount
	MethodCounts      []db.MethodCount
	LyricsCached      int64
}

// GetStats summarizes everything analyzed so far.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	dbStats, err := s.db.Analyses().Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading analysis stats: %w", err)
	}

	cached, err := s.db.Lyrics().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting cached lyrics: %w", err)
	}

	stats := &Stats{
		TotalAnalyses:     dbStats.TotalAnalyses,
		UniquePlaylists:   dbStats.UniquePlaylists,
		AverageConfidence: dbStats.AverageConfidence,
		MoodCounts:        dbStats.MoodCounts,
		MethodCounts:      dbStats.MethodCounts,
		LyricsCached:      cached,
	}
	if len(dbStats.MoodCounts) > 0 {
		stats.MostCommonMood = mood.Category(dbStats.MoodCounts[0].Mood)
	}
	return stats, nil
}

// fingerprint hashes the identity of an analysis input: playlist,
// method, and exact track sequence.
func fingerprint(playlistID string, mode mood.Mode, trackIDs []string) string {
	h := sha256.New()
	io.WriteString(h, playlistID)
	io.WriteString(h, "\n")
	io.WriteString(h, string(mode))
	for _, id := range trackIDs {
		io.WriteString(h, "\n")
		io.WriteString(h, id)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// fromStored rebuilds a Result from a persisted analysis row.
func fromStored(a *db.Analysis, reused bool) (*Result, error) {
	var dist mood.AffinityVector
	if len(a.Distribution) > 0 {
		if err := json.Unmarshal(a.Distribution, &dist); err != nil {
			return nil, fmt.Errorf("decoding stored distribution: %w", err)
		}
	}

	var diag mood.Diagnostics
	if len(a.Diagnostics) > 0 {
		if err := json.Unmarshal(a.Diagnostics, &diag); err != nil {
			return nil, fmt.Errorf("decoding stored diagnostics: %w", err)
		}
	}

	return &Result{
		AnalysisID:   a.ID,
		PlaylistID:   a.PlaylistID,
		PlaylistName: a.PlaylistName,
		Mood: mood.PlaylistResult{
			PrimaryMood:    mood.Category(a.PrimaryMood),
			Confidence:     a.Confidence,
			Distribution:   dist,
			TracksAnalyzed: a.TracksAnalyzed,
			Method:         mood.Mode(a.Method),
			Diagnostics:    diag,
		},
		Reused:    reused,
		CreatedAt: a.CreatedAt,
	}, nil
}
