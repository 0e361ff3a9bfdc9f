package mood

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	if w.GenrePrimary != 0.7 {
		t.Errorf("GenrePrimary = %v, want 0.7", w.GenrePrimary)
	}
	if w.MetadataGenre != 0.6 {
		t.Errorf("MetadataGenre = %v, want 0.6", w.MetadataGenre)
	}
	if w.LyricBlend != 0.4 {
		t.Errorf("LyricBlend = %v, want 0.4", w.LyricBlend)
	}
	if w.SparseLyricBlend != 0.2 {
		t.Errorf("SparseLyricBlend = %v, want 0.2", w.SparseLyricBlend)
	}
	if w.SparseCoverage != 0.3 {
		t.Errorf("SparseCoverage = %v, want 0.3", w.SparseCoverage)
	}
}

func TestLoadWeights_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	content := "genre_primary: 0.8\nlyric_blend: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing weights file: %v", err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights() error = %v", err)
	}

	if w.GenrePrimary != 0.8 {
		t.Errorf("GenrePrimary = %v, want 0.8", w.GenrePrimary)
	}
	if w.LyricBlend != 0.5 {
		t.Errorf("LyricBlend = %v, want 0.5", w.LyricBlend)
	}

	// Omitted fields keep their defaults.
	if w.MetadataGenre != 0.6 {
		t.Errorf("MetadataGenre = %v, want default 0.6", w.MetadataGenre)
	}
	if w.SparseCoverage != 0.3 {
		t.Errorf("SparseCoverage = %v, want default 0.3", w.SparseCoverage)
	}
}

func TestLoadWeights_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "out of range", content: "genre_primary: 1.5\n"},
		{name: "negative", content: "lyric_blend: -0.1\n"},
		{name: "malformed yaml", content: "genre_primary: [not a number\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "weights.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing weights file: %v", err)
			}
			if _, err := LoadWeights(path); err == nil {
				t.Error("LoadWeights() error = nil, want error")
			}
		})
	}
}

func TestLoadWeights_MissingFile(t *testing.T) {
	if _, err := LoadWeights(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadWeights() error = nil, want error")
	}
}
