package mood

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights holds the engine's tunable blend constants. Each constant
// lives here and nowhere else, so revising a split cannot leave a stale
// copy behind at another call site.
type Weights struct {
	// GenrePrimary is the share of genre mass given to the first
	// listed genre; the remaining genres split the rest evenly.
	GenrePrimary float64 `yaml:"genre_primary"`

	// MetadataGenre is the genre share when combining the genre and
	// audio vectors into the metadata vector; audio takes the rest.
	MetadataGenre float64 `yaml:"metadata_genre"`

	// LyricBlend is the lyric share of the final vector in enhanced
	// mode; metadata takes the rest.
	LyricBlend float64 `yaml:"lyric_blend"`

	// SparseLyricBlend replaces LyricBlend when the share of tracks
	// with eligible lyrics falls below SparseCoverage.
	SparseLyricBlend float64 `yaml:"sparse_lyric_blend"`
	SparseCoverage   float64 `yaml:"sparse_coverage"`
}

// DefaultWeights returns the standard engine tuning.
func DefaultWeights() Weights {
	return Weights{
		GenrePrimary:     0.7,
		MetadataGenre:    0.6,
		LyricBlend:       0.4,
		SparseLyricBlend: 0.2,
		SparseCoverage:   0.3,
	}
}

// LoadWeights reads a YAML weights file, filling omitted fields from
// the defaults. Used for operator tuning; the embedded defaults apply
// when no file is configured.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("reading weights file: %w", err)
	}
	w := DefaultWeights()
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("parsing weights file: %w", err)
	}
	if err := w.validate(); err != nil {
		return Weights{}, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}

// validate rejects weights outside [0,1]; these are operator
// configuration errors, not degraded track data, so they fail fast.
func (w Weights) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"genre_primary", w.GenrePrimary},
		{"metadata_genre", w.MetadataGenre},
		{"lyric_blend", w.LyricBlend},
		{"sparse_lyric_blend", w.SparseLyricBlend},
		{"sparse_coverage", w.SparseCoverage},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", c.name, c.value)
		}
	}
	return nil
}
