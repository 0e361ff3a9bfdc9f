package spotify

import (
	"testing"

	"github.com/zmb3/spotify/v2"
)

func TestConvertAudioFeatures(t *testing.T) {
	features := &spotify.AudioFeatures{
		Acousticness:     0.5,
		Danceability:     0.7,
		Energy:           0.8,
		Instrumentalness: 0.1,
		Liveness:         0.2,
		Loudness:         -5.0,
		Speechiness:      0.05,
		Tempo:            120.0,
		Valence:          0.6,
		Key:              7,
		Mode:             1,
		TimeSignature:    4,
	}

	got := convertAudioFeatures(features)

	floatTests := []struct {
		name     string
		got      float64
		expected float32
	}{
		{"Acousticness", got.Acousticness, 0.5},
		{"Danceability", got.Danceability, 0.7},
		{"Energy", got.Energy, 0.8},
		{"Instrumentalness", got.Instrumentalness, 0.1},
		{"Liveness", got.Liveness, 0.2},
		{"Loudness", got.Loudness, -5.0},
		{"Speechiness", got.Speechiness, 0.05},
		{"Tempo", got.Tempo, 120.0},
		{"Valence", got.Valence, 0.6},
	}

	for _, tt := range floatTests {
		t.Run(tt.name, func(t *testing.T) {
			// Widening float32 to float64 is exact, so compare against
			// the widened expectation.
			if tt.got != float64(tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if got.Key != 7 {
		t.Errorf("Key = %d, want 7", got.Key)
	}
	if got.Mode != 1 {
		t.Errorf("Mode = %d, want 1", got.Mode)
	}
	if got.TimeSignature != 4 {
		t.Errorf("TimeSignature = %d, want 4", got.TimeSignature)
	}
}

func TestAudioFeaturesBatchCount(t *testing.T) {
	tests := []struct {
		name          string
		totalTracks   int
		expectedCalls int
	}{
		{"empty", 0, 0},
		{"single track", 1, 1},
		{"less than 100", 50, 1},
		{"exactly 100", 100, 1},
		{"101 tracks", 101, 2},
		{"250 tracks", 250, 3},
		{"1000 tracks", 1000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			for i := 0; i < tt.totalTracks; i += maxTracksPerRequest {
				calls++
			}

			if calls != tt.expectedCalls {
				t.Errorf("got %d API calls, want %d", calls, tt.expectedCalls)
			}
		})
	}
}
