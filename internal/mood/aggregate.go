package mood

// TrackSignals is the engine's per-track input: whatever genre tags,
// audio features, and lyrics the fetch layer managed to collect. Any
// field may be absent; the engine never mutates the record.
type TrackSignals struct {
	ID       string
	Genres   []string // ordered, primary genre first
	Audio    *AudioFeatures
	Lyrics   string
	Language string // ISO 639-1 code when detected, "" when unknown
}

// SignalSources records which signal sources contributed to a track
// vector, for diagnostics and transparency.
type SignalSources struct {
	Genres bool `json:"genres"`
	Audio  bool `json:"audio"`
	Lyrics bool `json:"lyrics"`
}

// TrackResult is the per-track output: a vector normalized to sum 1.0,
// or the all-zero sentinel when the track produced no usable signal.
type TrackResult struct {
	ID      string         `json:"id"`
	Vector  AffinityVector `json:"vector"`
	Sources SignalSources  `json:"sources"`
}

// Contributing reports whether the track produced any usable signal.
func (r TrackResult) Contributing() bool {
	return !r.Vector.IsZero()
}

// trackParts holds the intermediate per-track vectors before the lyric
// blend is applied. Splitting aggregation this way lets Classify score
// every track once, measure lyric coverage, and only then pick the
// blend weight.
type trackParts struct {
	id       string
	meta     AffinityVector
	lyric    AffinityVector
	eligible bool
	sources  SignalSources
}

// AggregateTrack computes the mood vector for a single track using the
// configured lyric blend. Malformed or missing signal data degrades to
// zero contribution; the only error is an invalid mode, which is a
// caller contract violation.
func (c *Classifier) AggregateTrack(s TrackSignals, mode Mode) (TrackResult, error) {
	if !validMode(mode) {
		return TrackResult{}, invalidMode(mode)
	}
	return finalizeTrack(c.analyzeParts(s, mode), c.weights.LyricBlend), nil
}

// analyzeParts computes the metadata and lyric vectors for one track.
func (c *Classifier) analyzeParts(s TrackSignals, mode Mode) trackParts {
	p := trackParts{id: s.ID}

	genreVec := c.genreVector(s.Genres)
	audioVec := AudioVector(s.Audio)
	p.sources.Genres = !genreVec.IsZero()
	p.sources.Audio = !audioVec.IsZero()

	// Combine genre and audio into the metadata vector. When both are
	// present each side is normalized first so the split is a true
	// ratio; a lone source passes through and picks up its scale at
	// the final normalization.
	switch {
	case p.sources.Genres && p.sources.Audio:
		p.meta.addScaled(c.weights.MetadataGenre, genreVec.Normalized())
		p.meta.addScaled(1-c.weights.MetadataGenre, audioVec.Normalized())
	case p.sources.Genres:
		p.meta = genreVec
	case p.sources.Audio:
		p.meta = audioVec
	}

	if mode == ModeEnhanced && c.scorer != nil && s.Lyrics != "" {
		vec, eligible := c.scorer.Score(s.Lyrics, s.Language)
		if eligible && !vec.IsZero() {
			p.lyric = vec
			p.eligible = true
		}
	}

	return p
}

// finalizeTrack applies the lyric blend and normalizes. A zero raw sum
// yields the all-zero sentinel, never a uniform distribution.
func finalizeTrack(p trackParts, lyricBlend float64) TrackResult {
	r := TrackResult{ID: p.id, Sources: p.sources}

	if p.eligible {
		var blended AffinityVector
		blended.addScaled(1-lyricBlend, p.meta.Normalized())
		blended.addScaled(lyricBlend, p.lyric.Normalized())
		r.Sources.Lyrics = true
		r.Vector = blended.Normalized()
		return r
	}

	r.Vector = p.meta.Normalized()
	return r
}

// genreVector sums the per-genre affinities with the primary genre
// holding its configured share and the remaining genres splitting the
// rest evenly. The positional weighting happens only here; the genre
// table itself is position-blind.
func (c *Classifier) genreVector(genres []string) AffinityVector {
	switch len(genres) {
	case 0:
		return AffinityVector{}
	case 1:
		return GenreVector(genres[0])
	}

	var rest AffinityVector
	for _, g := range genres[1:] {
		rest.addScaled(1, GenreVector(g))
	}

	restShare := (1 - c.weights.GenrePrimary) / float64(len(genres)-1)

	var out AffinityVector
	out.addScaled(c.weights.GenrePrimary, GenreVector(genres[0]))
	out.addScaled(restShare, rest)
	return out
}
