package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
)

// FetchAudioFeatures retrieves audio features for the given tracks.
// Returns a map of track ID to features; tracks Spotify has no
// features for are absent from the map. Batches requests to max 100
// tracks per request per Spotify API limits.
func (c *Client) FetchAudioFeatures(ctx context.Context, trackIDs []string) (map[string]*mood.AudioFeatures, error) {
	features := make(map[string]*mood.AudioFeatures, len(trackIDs))
	if len(trackIDs) == 0 {
		return features, nil
	}

	ids := make([]spotify.ID, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = spotify.ID(id)
	}

	for i := 0; i < len(ids); i += maxTracksPerRequest {
		end := min(i+maxTracksPerRequest, len(ids))
		batch := ids[i:end]

		fetched, err := c.api.GetAudioFeatures(ctx, batch...)
		if err != nil {
			return nil, fmt.Errorf("fetching audio features (batch %d-%d): %w", i+1, end, err)
		}

		for _, f := range fetched {
			if f == nil {
				continue // Track has no audio features
			}
			features[f.ID.String()] = convertAudioFeatures(f)
		}
	}

	return features, nil
}

// convertAudioFeatures copies Spotify audio feature values into the
// engine's representation.
func convertAudioFeatures(f *spotify.AudioFeatures) *mood.AudioFeatures {
	return &mood.AudioFeatures{
		Valence:          float64(f.Valence),
		Energy:           float64(f.Energy),
		Danceability:     float64(f.Danceability),
		Acousticness:     float64(f.Acousticness),
		Instrumentalness: float64(f.Instrumentalness),
		Liveness:         float64(f.Liveness),
		Speechiness:      float64(f.Speechiness),
		Tempo:            float64(f.Tempo),
		Loudness:         float64(f.Loudness),
		Key:              int(f.Key),
		Mode:             int(f.Mode),
		TimeSignature:    int(f.TimeSignature),
	}
}
