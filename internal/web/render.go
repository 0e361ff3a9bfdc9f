package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/justestif/go-playlist-mood-analyzer/internal/analysis"
	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
)

// respond writes data as a JSON response with the given status.
func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type indexResponse struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

type loginResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type healthResponse struct {
	Status        string    `json:"status"`
	Database      string    `json:"database"`
	LyricsEnabled bool      `json:"lyrics_enabled"`
	Time          time.Time `json:"time"`
}

// analysisResponse is the wire form of an analysis result.
type analysisResponse struct {
	AnalysisID     string              `json:"analysis_id"`
	PlaylistID     string              `json:"playlist_id"`
	PlaylistName   string              `json:"playlist_name,omitempty"`
	PrimaryMood    mood.Category       `json:"primary_mood"`
	Confidence     float64             `json:"mood_confidence"`
	ConfidenceTier mood.ConfidenceTier `json:"confidence_tier"`
	Distribution   mood.AffinityVector `json:"mood_distribution"`
	TracksAnalyzed int                 `json:"tracks_analyzed"`
	Method         mood.Mode           `json:"analysis_method"`
	Diagnostics    mood.Diagnostics    `json:"diagnostics"`
	Reused         bool                `json:"reused"`
	CreatedAt      time.Time           `json:"created_at"`
}

func newAnalysisResponse(r *analysis.Result) analysisResponse {
	return analysisResponse{
		AnalysisID:     r.AnalysisID.String(),
		PlaylistID:     r.PlaylistID,
		PlaylistName:   r.PlaylistName,
		PrimaryMood:    r.Mood.PrimaryMood,
		Confidence:     r.Mood.Confidence,
		ConfidenceTier: mood.TierFor(r.Mood.Confidence),
		Distribution:   r.Mood.Distribution,
		TracksAnalyzed: r.Mood.TracksAnalyzed,
		Method:         r.Mood.Method,
		Diagnostics:    r.Mood.Diagnostics,
		Reused:         r.Reused,
		CreatedAt:      r.CreatedAt,
	}
}

// historyEntryResponse is one row in an analysis history listing.
type historyEntryResponse struct {
	AnalysisID     string        `json:"analysis_id"`
	PrimaryMood    mood.Category `json:"primary_mood"`
	Confidence     float64       `json:"mood_confidence"`
	Method         mood.Mode     `json:"analysis_method"`
	TracksAnalyzed int           `json:"tracks_analyzed"`
	CreatedAt      time.Time     `json:"created_at"`
}

type historyResponse struct {
	PlaylistID string                 `json:"playlist_id"`
	Analyses   []historyEntryResponse `json:"analyses"`
}

func newHistoryResponse(playlistID string, entries []analysis.HistoryEntry) historyResponse {
	resp := historyResponse{
		PlaylistID: playlistID,
		Analyses:   make([]historyEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Analyses = append(resp.Analyses, historyEntryResponse{
			AnalysisID:     e.AnalysisID.String(),
			PrimaryMood:    e.PrimaryMood,
			Confidence:     e.Confidence,
			Method:         e.Method,
			TracksAnalyzed: e.TracksAnalyzed,
			CreatedAt:      e.CreatedAt,
		})
	}
	return resp
}

type moodCountResponse struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type methodCountResponse struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

type statsResponse struct {
	TotalAnalyses     int64                 `json:"total_analyses"`
	UniquePlaylists   int64                 `json:"unique_playlists"`
	AverageConfidence float64               `json:"average_confidence"`
	MostCommonMood    mood.Category         `json:"most_common_mood,omitempty"`
	MoodCounts        []moodCountResponse   `json:"mood_counts"`
	MethodCounts      []methodCountResponse `json:"method_counts"`
	LyricsCached      int64                 `json:"lyrics_cached"`
}

func newStatsResponse(s *analysis.Stats) statsResponse {
	resp := statsResponse{
		TotalAnalyses:     s.TotalAnalyses,
		UniquePlaylists:   s.UniquePlaylists,
		AverageConfidence: s.AverageConfidence,
		MostCommonMood:    s.MostCommonMood,
		MoodCounts:        make([]moodCountResponse, 0, len(s.MoodCounts)),
		MethodCounts:      make([]methodCountResponse, 0, len(s.MethodCounts)),
		LyricsCached:      s.LyricsCached,
	}
	for _, mc := range s.MoodCounts {
		resp.MoodCounts = append(resp.MoodCounts, moodCountResponse(mc))
	}
	for _, mc := range s.MethodCounts {
		resp.MethodCounts = append(resp.MethodCounts, methodCountResponse(mc))
	}
	return resp
}
