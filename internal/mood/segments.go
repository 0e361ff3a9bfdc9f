package mood

import (
	"math"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Segment describes one cluster of tracks that share a similar mood
// profile within a playlist. Segments are display-only diagnostics;
// they never influence the primary mood or distribution.
type Segment struct {
	Mood       Category `json:"mood"`        // dominant category of the cluster centroid
	TrackCount int      `json:"track_count"` // tracks in the cluster
	Share      float64  `json:"share"`       // fraction of contributing tracks
}

const (
	// minSegmentTracks is the smallest playlist worth segmenting.
	minSegmentTracks = 4
	// maxSegments caps the cluster count for small playlists.
	maxSegments = 3
)

// resultObservation adapts a TrackResult to the k-means observation
// interface, using the eight affinity weights as coordinates.
type resultObservation struct {
	coords clusters.Coordinates
}

func (o resultObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o resultObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Segments groups contributing tracks into mood clusters via k-means
// over their affinity vectors. Cluster seeding is randomized, so
// segments are not part of the deterministic classification result;
// callers attach them to stored diagnostics only. Returns nil when
// there are too few contributing tracks or clustering fails.
func (c *Classifier) Segments(results []TrackResult) []Segment {
	var obs clusters.Observations
	for _, r := range results {
		if !r.Contributing() {
			continue
		}
		coords := make(clusters.Coordinates, numCategories)
		copy(coords, r.Vector[:])
		obs = append(obs, resultObservation{coords: coords})
	}

	if len(obs) < minSegmentTracks {
		return nil
	}

	// k grows with the square root of the cluster population, capped
	// for readability. At least 2 once segmentation runs at all.
	k := int(math.Sqrt(float64(len(obs))))
	if k > maxSegments {
		k = maxSegments
	}
	if k < 2 {
		k = 2
	}

	km := kmeans.New()
	partition, err := km.Partition(obs, k)
	if err != nil {
		return nil
	}

	total := len(obs)
	var segments []Segment
	for _, cluster := range partition {
		if len(cluster.Observations) == 0 {
			continue
		}

		var centroid AffinityVector
		copy(centroid[:], cluster.Center)
		dominant, _ := centroid.Dominant()

		segments = append(segments, Segment{
			Mood:       dominant,
			TrackCount: len(cluster.Observations),
			Share:      float64(len(cluster.Observations)) / float64(total),
		})
	}

	// Largest segment first; mood order settles equal sizes.
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].TrackCount != segments[j].TrackCount {
			return segments[i].TrackCount > segments[j].TrackCount
		}
		return categoryIndex[segments[i].Mood] < categoryIndex[segments[j].Mood]
	})

	return segments
}
