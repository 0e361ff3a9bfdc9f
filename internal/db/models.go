package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a Spotify user profile.
type User struct {
	ID             string
	DisplayName    string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastAnalyzedAt *time.Time // nullable
}

// Session represents an authenticated web session.
type Session struct {
	ID           string
	UserID       string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Analysis represents a stored playlist mood analysis.
type Analysis struct {
	ID             uuid.UUID
	PlaylistID     string
	PlaylistName   string
	UserID         *string // nullable - absent for CLI runs
	PrimaryMood    string
	Confidence     float64
	Distribution   json.RawMessage // mood -> weight, sums to 1 (or all zero)
	TracksAnalyzed int
	Method         string // "standard" or "enhanced"
	Diagnostics    json.RawMessage
	Fingerprint    string // hash of playlist ID, method, and track IDs
	CreatedAt      time.Time
}

// Lyric represents cached lyrics for a track. An empty Body records a
// provider miss so the song is not looked up again until stale.
type Lyric struct {
	TrackID   string
	Artist    string
	Title     string
	Body      string
	Language  string
	FetchedAt time.Time
}

// MoodCount pairs a mood with the number of analyses it dominated.
type MoodCount struct {
	Mood  string
	Count int
}

// MethodCount pairs an analysis method with its number of runs.
type MethodCount struct {
	Method string
	Count  int
}

// AnalysisStats summarizes stored analyses.
type AnalysisStats struct {
	TotalAnalyses     int64
	UniquePlaylists   int64
	AverageConfidence float64
	MoodCounts        []MoodCount
	MethodCounts      []MethodCount
}
