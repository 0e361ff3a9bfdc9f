package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
)

func mustVector(t *testing.T, weights map[mood.Category]float64) mood.AffinityVector {
	t.Helper()
	v, err := mood.NewVector(weights)
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}
	return v
}

func TestFormatResult(t *testing.T) {
	r := &Result{
		PlaylistID:   "p1",
		PlaylistName: "Chill Mix",
		Mood: mood.PlaylistResult{
			PrimaryMood: mood.Calm,
			Confidence:  0.72,
			Distribution: mustVector(t, map[mood.Category]float64{
				mood.Calm: 0.72,
				mood.Sad:  0.28,
			}),
			TracksAnalyzed: 12,
			Method:         mood.ModeStandard,
			Diagnostics: mood.Diagnostics{
				TracksWithGenres: 10,
				UniqueGenres:     5,
				SampleGenres:     []string{"ambient", "jazz"},
				MoodSegments: []mood.Segment{
					{Mood: mood.Calm, TrackCount: 8, Share: 0.667},
					{Mood: mood.Sad, TrackCount: 4, Share: 0.333},
				},
			},
		},
		CreatedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}

	out := FormatResult(r)

	for _, want := range []string{
		"Playlist: Chill Mix",
		"Analyzed 12 tracks (standard mode) at 2025-06-01 14:30",
		"Primary mood: calm (72% confidence, HIGH)",
		"calm",
		"72.0%",
		"sad",
		"28.0%",
		"Mood segments:",
		"calm: 8 tracks (67%)",
		"sad: 4 tracks (33%)",
		"Signals: genres on 10 tracks (5 unique), lyrics on 0 tracks (0% coverage)",
		"Top genres: ambient, jazz",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "stored result") {
		t.Errorf("fresh result mentions reuse:\n%s", out)
	}
}

func TestFormatResult_Reused(t *testing.T) {
	r := &Result{
		PlaylistName: "Chill Mix",
		Mood: mood.PlaylistResult{
			PrimaryMood:    mood.Calm,
			Confidence:     0.5,
			Distribution:   mustVector(t, map[mood.Category]float64{mood.Calm: 1}),
			TracksAnalyzed: 1,
			Method:         mood.ModeStandard,
		},
		Reused:    true,
		CreatedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}

	out := FormatResult(r)

	if !strings.Contains(out, "Playlist unchanged, showing stored result.") {
		t.Errorf("reused result missing notice:\n%s", out)
	}
	if !strings.Contains(out, "Analyzed 1 track (") {
		t.Errorf("singular track count not rendered:\n%s", out)
	}
}

func TestFormatResult_NoSignals(t *testing.T) {
	r := &Result{
		PlaylistName: "Empty",
		Mood: mood.PlaylistResult{
			PrimaryMood: mood.Calm,
			Method:      mood.ModeStandard,
		},
		CreatedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}

	out := FormatResult(r)

	if !strings.Contains(out, `defaulting to "calm" with zero confidence`) {
		t.Errorf("degenerate result missing fallback notice:\n%s", out)
	}
	if strings.Contains(out, "Primary mood:") {
		t.Errorf("degenerate result should not render a distribution:\n%s", out)
	}
}

func TestDistributionLines(t *testing.T) {
	dist := mustVector(t, map[mood.Category]float64{
		mood.Happy: 0.5,
		mood.Sad:   0.3,
		mood.Calm:  0.19,
		mood.Angry: 0.01,
	})

	lines := distributionLines(dist)

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (zero weights skipped)", len(lines))
	}

	wantOrder := []string{"happy", "sad", "calm", "angry"}
	for i, cat := range wantOrder {
		if !strings.Contains(lines[i], cat) {
			t.Errorf("line %d = %q, want category %q", i, lines[i], cat)
		}
	}

	// 0.5 renders a 20-block bar; the smallest weight still gets one.
	if !strings.Contains(lines[0], strings.Repeat("█", 20)) {
		t.Errorf("heaviest line = %q, want 20-block bar", lines[0])
	}
	if !strings.Contains(lines[3], "█") {
		t.Errorf("smallest line = %q, want at least one block", lines[3])
	}
}

func TestDistributionLines_TiesKeepCanonicalOrder(t *testing.T) {
	dist := mustVector(t, map[mood.Category]float64{
		mood.Happy:  0.5,
		mood.Upbeat: 0.5,
	})

	lines := distributionLines(dist)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "happy") || !strings.Contains(lines[1], "upbeat") {
		t.Errorf("tied weights out of canonical order: %v", lines)
	}
}
