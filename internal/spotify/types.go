package spotify

import "strings"

// Playlist contains playlist metadata from Spotify.
type Playlist struct {
	ID          string
	Name        string
	Description string
	Owner       string
	TrackCount  int
}

// Track contains the track metadata needed to build mood signals.
// Artists and ArtistIDs are parallel slices with the primary artist
// first.
type Track struct {
	ID        string
	Name      string
	Artists   []string
	ArtistIDs []string
}

// PrimaryArtist returns the first-listed artist, or "" for none.
func (t Track) PrimaryArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// ArtistLine returns all artist names joined by ", ".
func (t Track) ArtistLine() string {
	return strings.Join(t.Artists, ", ")
}

// UserProfile contains the Spotify profile fields persisted on login.
type UserProfile struct {
	ID          string
	DisplayName string
	Email       string
}
