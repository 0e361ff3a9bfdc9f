package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

const maxArtistsPerRequest = 50

// FetchArtistGenres retrieves genres for the given artists.
// Returns a map of artist ID to genre names. Duplicate IDs are fetched
// once; requests are batched to max 50 artists per Spotify API limits.
func (c *Client) FetchArtistGenres(ctx context.Context, artistIDs []string) (map[string][]string, error) {
	genres := make(map[string][]string, len(artistIDs))
	if len(artistIDs) == 0 {
		return genres, nil
	}

	// Dedupe while preserving order
	seen := make(map[string]bool, len(artistIDs))
	var ids []spotify.ID
	for _, id := range artistIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, spotify.ID(id))
	}

	for i := 0; i < len(ids); i += maxArtistsPerRequest {
		end := min(i+maxArtistsPerRequest, len(ids))
		batch := ids[i:end]

		artists, err := c.api.GetArtists(ctx, batch...)
		if err != nil {
			return nil, fmt.Errorf("fetching artists (batch %d-%d): %w", i+1, end, err)
		}

		for _, a := range artists {
			if a == nil {
				continue
			}
			genres[a.ID.String()] = a.Genres
		}
	}

	return genres, nil
}
