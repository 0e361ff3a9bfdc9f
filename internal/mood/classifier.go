package mood

import (
	"fmt"
	"sort"
	"strings"
)

// FallbackMood is the primary mood reported when no track in a playlist
// produced a usable signal. Paired with confidence 0.0 and a zero
// distribution it forms the documented degenerate result.
const FallbackMood = Calm

// sampleGenreCount caps the sample_genres diagnostic list.
const sampleGenreCount = 10

// LyricScorer turns lyric text into a mood affinity vector. The second
// return value reports eligibility; ineligible text (wrong language,
// too short, absent) must not contribute.
type LyricScorer interface {
	Score(text, language string) (AffinityVector, bool)
}

// Classifier is the playlist mood inference engine. It holds only the
// immutable tuning weights and an optional lyric scorer, so a single
// instance is safe for concurrent use across playlists.
type Classifier struct {
	weights Weights
	scorer  LyricScorer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithWeights overrides the default engine tuning.
func WithWeights(w Weights) Option {
	return func(c *Classifier) { c.weights = w }
}

// WithLyricScorer supplies the scorer used in enhanced mode. Without
// one, enhanced mode degrades to metadata-only classification.
func WithLyricScorer(s LyricScorer) Option {
	return func(c *Classifier) { c.scorer = s }
}

// New creates a Classifier with default weights.
func New(opts ...Option) *Classifier {
	c := &Classifier{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weights returns the classifier's active tuning.
func (c *Classifier) Weights() Weights {
	return c.weights
}

// Diagnostics carries auxiliary counts about an analysis, persisted and
// surfaced alongside the result for transparency.
type Diagnostics struct {
	TracksWithGenres int       `json:"tracks_with_genres"`
	TracksWithLyrics int       `json:"tracks_with_lyrics"`
	UniqueGenres     int       `json:"unique_genres"`
	SampleGenres     []string  `json:"sample_genres,omitempty"`
	LyricsCoverage   float64   `json:"lyrics_coverage"`
	MoodSegments     []Segment `json:"mood_segments,omitempty"`
}

// PlaylistResult is the immutable output of one classification run.
type PlaylistResult struct {
	PrimaryMood    Category       `json:"primary_mood"`
	Confidence     float64        `json:"mood_confidence"`
	Distribution   AffinityVector `json:"mood_distribution"`
	TracksAnalyzed int            `json:"tracks_analyzed"`
	Method         Mode           `json:"analysis_method"`
	Diagnostics    Diagnostics    `json:"diagnostics"`
}

// ConfidenceTier returns the presentation tier for the result.
func (r PlaylistResult) ConfidenceTier() ConfidenceTier {
	return TierFor(r.Confidence)
}

// Classify runs the full engine over a playlist's tracks: aggregate a
// vector per track, then reduce to a playlist distribution, primary
// mood, and confidence. It is a pure function of its inputs; identical
// input always yields an identical result. The only error is an
// invalid mode, a caller contract violation; every data-quality issue
// in the tracks degrades to reduced contribution instead.
func (c *Classifier) Classify(tracks []TrackSignals, mode Mode) (PlaylistResult, error) {
	res, _, err := c.ClassifyWithTracks(tracks, mode)
	return res, err
}

// ClassifyWithTracks is Classify plus the per-track results, for
// callers that post-process individual tracks (segmentation, display).
func (c *Classifier) ClassifyWithTracks(tracks []TrackSignals, mode Mode) (PlaylistResult, []TrackResult, error) {
	if !validMode(mode) {
		return PlaylistResult{}, nil, invalidMode(mode)
	}

	// First pass: score every track once and count eligible lyrics,
	// so the blend weight can adapt to sparse lyric coverage before
	// any vector is finalized. Coverage is measured against tracks
	// that carry any signal; tracks with nothing to say don't dilute
	// the ratio.
	parts := make([]trackParts, len(tracks))
	eligible, withSignal := 0, 0
	for i, t := range tracks {
		parts[i] = c.analyzeParts(t, mode)
		if parts[i].eligible {
			eligible++
		}
		if parts[i].eligible || !parts[i].meta.IsZero() {
			withSignal++
		}
	}

	blend := c.weights.LyricBlend
	if mode == ModeEnhanced && withSignal > 0 {
		coverage := float64(eligible) / float64(withSignal)
		if coverage < c.weights.SparseCoverage {
			blend = c.weights.SparseLyricBlend
		}
	}

	results := make([]TrackResult, len(parts))
	for i, p := range parts {
		results[i] = finalizeTrack(p, blend)
	}

	res := c.reduce(results, mode)
	res.Diagnostics = buildDiagnostics(tracks, results)
	return res, results, nil
}

// reduce folds track results into the playlist-level result.
// Non-contributing tracks are excluded from the mean rather than
// diluted into it; zero contributors produce the documented fallback.
func (c *Classifier) reduce(results []TrackResult, mode Mode) PlaylistResult {
	var mean AffinityVector
	contributing := 0
	for _, r := range results {
		if !r.Contributing() {
			continue
		}
		mean.addScaled(1, r.Vector)
		contributing++
	}

	if contributing == 0 {
		return PlaylistResult{
			PrimaryMood: FallbackMood,
			Method:      mode,
		}
	}

	mean.scale(1 / float64(contributing))

	primary, top := mean.Dominant()
	return PlaylistResult{
		PrimaryMood:    primary,
		Confidence:     top,
		Distribution:   mean,
		TracksAnalyzed: contributing,
		Method:         mode,
	}
}

// buildDiagnostics derives the auxiliary counts from the raw signals
// and the finalized track results.
func buildDiagnostics(tracks []TrackSignals, results []TrackResult) Diagnostics {
	var d Diagnostics

	freq := make(map[string]int)
	for _, t := range tracks {
		if len(t.Genres) > 0 {
			d.TracksWithGenres++
		}
		for _, g := range t.Genres {
			key := strings.ToLower(strings.TrimSpace(g))
			if key == "" {
				continue
			}
			freq[key]++
		}
	}

	contributing := 0
	for _, r := range results {
		if r.Contributing() {
			contributing++
		}
		if r.Sources.Lyrics {
			d.TracksWithLyrics++
		}
	}

	d.UniqueGenres = len(freq)
	d.SampleGenres = topGenres(freq, sampleGenreCount)
	if contributing > 0 {
		d.LyricsCoverage = float64(d.TracksWithLyrics) / float64(contributing)
	}
	return d
}

// topGenres returns the n most frequent genres, most frequent first,
// with alphabetical order breaking count ties so the list is stable.
func topGenres(freq map[string]int, n int) []string {
	if len(freq) == 0 {
		return nil
	}

	genres := make([]string, 0, len(freq))
	for g := range freq {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool {
		if freq[genres[i]] != freq[genres[j]] {
			return freq[genres[i]] > freq[genres[j]]
		}
		return genres[i] < genres[j]
	})

	if len(genres) > n {
		genres = genres[:n]
	}
	return genres
}

func validMode(m Mode) bool {
	return m == ModeStandard || m == ModeEnhanced
}

func invalidMode(m Mode) error {
	return fmt.Errorf("%w: %q", ErrInvalidMode, m)
}
