package lyrics

// Lyric is the text retrieved for one song. An empty Text means the
// provider had no lyrics; that is a cacheable answer, not an error.
type Lyric struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Found reports whether the provider returned any lyric text.
func (l Lyric) Found() bool {
	return l.Text != ""
}

// searchResponse is the JSON response for the provider search endpoint.
type searchResponse struct {
	Results []searchHit `json:"results"`
}

// searchHit is one candidate song from a provider search.
type searchHit struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Language string `json:"language"`
}

// lyricsResponse is the JSON response for the lyrics endpoint.
type lyricsResponse struct {
	Lyrics   string `json:"lyrics"`
	Language string `json:"language"`
}
