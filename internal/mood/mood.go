// Package mood implements the playlist mood inference engine: a
// deterministic, rule-based classifier that turns per-track signals
// (genre tags, audio features, optional lyric sentiment) into a
// playlist-level mood distribution with a primary mood and confidence.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the fixed set of eight mood labels.
type Category string

// The eight mood categories in canonical order. All iteration over
// categories follows this order so that results are reproducible.
const (
	Happy       Category = "happy"
	Sad         Category = "sad"
	Energetic   Category = "energetic"
	Calm        Category = "calm"
	Angry       Category = "angry"
	Romantic    Category = "romantic"
	Melancholic Category = "melancholic"
	Upbeat      Category = "upbeat"
)

// Array indexes for the canonical category order.
const (
	happyIdx = iota
	sadIdx
	energeticIdx
	calmIdx
	angryIdx
	romanticIdx
	melancholicIdx
	upbeatIdx
	numCategories
)

// Categories lists all mood categories in canonical order.
var Categories = [numCategories]Category{
	happyIdx:       Happy,
	sadIdx:         Sad,
	energeticIdx:   Energetic,
	calmIdx:        Calm,
	angryIdx:       Angry,
	romanticIdx:    Romantic,
	melancholicIdx: Melancholic,
	upbeatIdx:      Upbeat,
}

var categoryIndex = map[Category]int{
	Happy:       happyIdx,
	Sad:         sadIdx,
	Energetic:   energeticIdx,
	Calm:        calmIdx,
	Angry:       angryIdx,
	Romantic:    romanticIdx,
	Melancholic: melancholicIdx,
	Upbeat:      upbeatIdx,
}

// Sentinel errors for caller contract violations. Every data-quality
// problem (unknown genre, missing features, ineligible lyrics) degrades
// to zero contribution instead; these are the only errors the engine
// surfaces.
var (
	ErrInvalidCategory = errors.New("invalid mood category")
	ErrInvalidMode     = errors.New("invalid analysis mode")
)

// ParseCategory validates a mood category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryIndex[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the eight fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// Mode selects how much signal the engine blends into a track vector.
type Mode string

// Analysis modes. Standard uses genre and audio metadata only; enhanced
// additionally blends lyric sentiment for tracks with eligible lyrics.
const (
	ModeStandard Mode = "standard"
	ModeEnhanced Mode = "enhanced"
)

// ParseMode validates an analysis mode string.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeStandard, ModeEnhanced:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ConfidenceTier buckets a confidence score for presentation.
type ConfidenceTier string

// Confidence tiers with their documented boundaries.
const (
	TierLow    ConfidenceTier = "low"    // below 40%
	TierMedium ConfidenceTier = "medium" // 40% to 70%
	TierHigh   ConfidenceTier = "high"   // 70% and above
)

const (
	tierMediumMin = 0.40
	tierHighMin   = 0.70
)

// TierFor returns the presentation tier for a confidence score.
func TierFor(confidence float64) ConfidenceTier {
	switch {
	case confidence >= tierHighMin:
		return TierHigh
	case confidence >= tierMediumMin:
		return TierMedium
	default:
		return TierLow
	}
}
