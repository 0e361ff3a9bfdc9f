package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
)

const (
	barScale   = 40 // characters for a weight of 1.0
	dateFormat = "2006-01-02 15:04"
)

// FormatResult returns a human-readable summary of an analysis with a
// mood distribution bar chart.
func FormatResult(r *Result) string {
	var sb strings.Builder

	trackWord := "track"
	if r.Mood.TracksAnalyzed != 1 {
		trackWord = "tracks"
	}

	sb.WriteString(fmt.Sprintf("Playlist: %s\n", r.PlaylistName))
	sb.WriteString(fmt.Sprintf("Analyzed %d %s (%s mode) at %s\n",
		r.Mood.TracksAnalyzed, trackWord, r.Mood.Method, r.CreatedAt.Format(dateFormat)))
	if r.Reused {
		sb.WriteString("Playlist unchanged, showing stored result.\n")
	}
	sb.WriteString("\n")

	if r.Mood.TracksAnalyzed == 0 {
		sb.WriteString(fmt.Sprintf("No usable signals found; defaulting to %q with zero confidence.\n",
			r.Mood.PrimaryMood))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Primary mood: %s (%.0f%% confidence, %s)\n\n",
		r.Mood.PrimaryMood, r.Mood.Confidence*100, strings.ToUpper(string(r.Mood.ConfidenceTier()))))

	for _, line := range distributionLines(r.Mood.Distribution) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if segs := r.Mood.Diagnostics.MoodSegments; len(segs) > 0 {
		sb.WriteString("\nMood segments:\n")
		for _, seg := range segs {
			segWord := "track"
			if seg.TrackCount != 1 {
				segWord = "tracks"
			}
			sb.WriteString(fmt.Sprintf("  • %s: %d %s (%.0f%%)\n",
				seg.Mood, seg.TrackCount, segWord, seg.Share*100))
		}
	}

	d := r.Mood.Diagnostics
	sb.WriteString(fmt.Sprintf("\nSignals: genres on %d tracks (%d unique), lyrics on %d tracks (%.0f%% coverage)\n",
		d.TracksWithGenres, d.UniqueGenres, d.TracksWithLyrics, d.LyricsCoverage*100))
	if len(d.SampleGenres) > 0 {
		sb.WriteString(fmt.Sprintf("Top genres: %s\n", strings.Join(d.SampleGenres, ", ")))
	}

	return sb.String()
}

// distributionLines renders the non-zero moods as aligned bar rows,
// heaviest first.
func distributionLines(dist mood.AffinityVector) []string {
	type row struct {
		category mood.Category
		weight   float64
	}

	var rows []row
	for _, c := range mood.Categories {
		w, _ := dist.Weight(c)
		if w <= 0 {
			continue
		}
		rows = append(rows, row{category: c, weight: w})
	}

	// Canonical category order already breaks ties from the ranged
	// iteration above; sort is stable.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].weight > rows[j].weight
	})

	lines := make([]string, len(rows))
	for i, r := range rows {
		bar := strings.Repeat("█", max(1, int(r.weight*barScale)))
		lines[i] = fmt.Sprintf("  %-12s %5.1f%%  %s", r.category, r.weight*100, bar)
	}
	return lines
}
