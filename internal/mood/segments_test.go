package mood

import (
	"math"
	"testing"
)

func metalResult(id string) TrackResult {
	return TrackResult{
		ID:      id,
		Vector:  AffinityVector{angryIdx: 0.6, energeticIdx: 0.4},
		Sources: SignalSources{Genres: true},
	}
}

func meditationResult(id string) TrackResult {
	return TrackResult{
		ID:      id,
		Vector:  AffinityVector{calmIdx: 1},
		Sources: SignalSources{Genres: true},
	}
}

func TestSegments_TooFewTracks(t *testing.T) {
	c := New()

	results := []TrackResult{
		metalResult("1"),
		metalResult("2"),
		meditationResult("3"),
	}
	if got := c.Segments(results); got != nil {
		t.Errorf("Segments() = %v, want nil for 3 contributing tracks", got)
	}

	// Non-contributing tracks don't count toward the minimum.
	results = append(results, TrackResult{ID: "4"}, TrackResult{ID: "5"})
	if got := c.Segments(results); got != nil {
		t.Errorf("Segments() = %v, want nil with only 3 contributing tracks", got)
	}
}

func TestSegments_PartitionInvariants(t *testing.T) {
	c := New()

	var results []TrackResult
	for i := 0; i < 6; i++ {
		results = append(results, metalResult(string(rune('a'+i))))
	}
	for i := 0; i < 6; i++ {
		results = append(results, meditationResult(string(rune('m'+i))))
	}

	segments := c.Segments(results)
	if len(segments) < 2 {
		t.Fatalf("Segments() returned %d segments, want at least 2", len(segments))
	}

	total := 0
	shares := 0.0
	for i, s := range segments {
		if s.TrackCount <= 0 {
			t.Errorf("segment %d has track count %d", i, s.TrackCount)
		}
		total += s.TrackCount
		shares += s.Share

		// Every centroid is a mix of metal and meditation vectors, so
		// its dominant mood can only be angry or calm.
		if s.Mood != Angry && s.Mood != Calm {
			t.Errorf("segment %d mood = %q, want angry or calm", i, s.Mood)
		}

		if i > 0 && segments[i-1].TrackCount < s.TrackCount {
			t.Errorf("segments not ordered by size: %d before %d", segments[i-1].TrackCount, s.TrackCount)
		}
	}

	if total != 12 {
		t.Errorf("segment track counts sum to %d, want 12", total)
	}
	if math.Abs(shares-1.0) > 1e-6 {
		t.Errorf("segment shares sum to %v, want 1.0", shares)
	}
}
