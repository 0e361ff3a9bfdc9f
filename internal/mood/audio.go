package mood

// AudioFeatures holds the numeric audio attributes for one track.
// The seven proportion attributes are expected in [0,1] and are clamped
// before use; tempo is BPM, loudness is dB (negative, typically -60..0).
// Key, mode, and time signature ride along for completeness; only mode
// participates in scoring.
type AudioFeatures struct {
	Valence          float64
	Energy           float64
	Danceability     float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Speechiness      float64
	Tempo            float64
	Loudness         float64
	Key              int
	Mode             int
	TimeSignature    int
}

// Tempo and loudness windows used to squeeze the unbounded attributes
// into [0,1] alongside the proportion attributes.
const (
	tempoFloor   = 60.0  // BPM at or below this scores 0
	tempoCeiling = 180.0 // BPM at or above this scores 1
	loudnessSpan = 60.0  // dB range mapped onto [0,1], -60 dB to 0 dB
)

// AudioVector maps audio features onto mood affinities. Each mood is a
// fixed linear combination of feature values or their complements, so
// the same profile always lands on the same vector. The result is
// unnormalized; the aggregator normalizes once at the end. A nil
// feature set yields the zero vector.
func AudioVector(f *AudioFeatures) AffinityVector {
	if f == nil {
		return AffinityVector{}
	}

	valence := clamp01(f.Valence)
	energy := clamp01(f.Energy)
	dance := clamp01(f.Danceability)
	acoustic := clamp01(f.Acousticness)
	instrumental := clamp01(f.Instrumentalness)
	speech := clamp01(f.Speechiness)

	tempo := clamp01((f.Tempo - tempoFloor) / (tempoCeiling - tempoFloor))
	loud := clamp01((f.Loudness + loudnessSpan) / loudnessSpan)
	major := 0.0
	if f.Mode == 1 {
		major = 1.0
	}

	var v AffinityVector
	v[happyIdx] = 0.45*valence + 0.25*dance + 0.15*energy + 0.15*major
	v[sadIdx] = 0.45*(1-valence) + 0.25*acoustic + 0.15*(1-energy) + 0.15*(1-major)
	v[energeticIdx] = 0.35*energy + 0.25*tempo + 0.20*dance + 0.20*(1-acoustic)
	v[calmIdx] = 0.35*acoustic + 0.25*instrumental + 0.25*(1-energy) + 0.15*(1-loud)
	v[angryIdx] = 0.45*energy + 0.35*(1-valence) + 0.10*loud + 0.10*(1-major)
	v[romanticIdx] = 0.35*acoustic + 0.25*valence + 0.25*(1-energy) + 0.15*(1-speech)
	v[melancholicIdx] = 0.35*(1-valence) + 0.30*acoustic + 0.20*(1-energy) + 0.15*(1-major)
	v[upbeatIdx] = 0.35*dance + 0.30*valence + 0.20*energy + 0.15*tempo

	v.clampNonNegative()
	return v
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
