package spotify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zmb3/spotify/v2"
)

const maxTracksPerRequest = 100

// FetchPlaylist retrieves a playlist's metadata and all of its tracks.
// Pagination is handled transparently; local files and items without a
// track ID (podcast episodes) are skipped.
func (c *Client) FetchPlaylist(ctx context.Context, playlistID string) (*Playlist, []Track, error) {
	full, err := c.api.GetPlaylist(ctx, spotify.ID(playlistID))
	if err != nil {
		return nil, nil, fmt.Errorf("fetching playlist: %w", err)
	}

	playlist := &Playlist{
		ID:          full.ID.String(),
		Name:        full.Name,
		Description: full.Description,
		Owner:       full.Owner.DisplayName,
		TrackCount:  int(full.Tracks.Total),
	}

	var tracks []Track
	page := full.Tracks
	for {
		for _, item := range page.Tracks {
			if item.IsLocal || item.Track.ID == "" {
				continue
			}
			tracks = append(tracks, convertPlaylistTrack(item))
		}

		err = c.api.NextPage(ctx, &page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fetching next page: %w", err)
		}
	}

	log.Printf("Fetched %d tracks from playlist %q", len(tracks), playlist.Name)
	return playlist, tracks, nil
}

// convertPlaylistTrack converts a Spotify PlaylistTrack to a Track.
func convertPlaylistTrack(item spotify.PlaylistTrack) Track {
	artists := make([]string, len(item.Track.Artists))
	artistIDs := make([]string, len(item.Track.Artists))
	for i, a := range item.Track.Artists {
		artists[i] = a.Name
		artistIDs[i] = a.ID.String()
	}

	return Track{
		ID:        item.Track.ID.String(),
		Name:      item.Track.Name,
		Artists:   artists,
		ArtistIDs: artistIDs,
	}
}
