package mood

import (
	"math"
	"testing"
)

func TestGenreVector(t *testing.T) {
	tests := []struct {
		name     string
		genre    string
		wantMood Category // dominant category, zero value for no signal
		wantZero bool
	}{
		{name: "metal is angry", genre: "metal", wantMood: Angry},
		// punk ties angry and energetic at 0.5; canonical order puts
		// energetic first.
		{name: "punk tie resolves canonically", genre: "punk", wantMood: Energetic},
		{name: "ambient is calm", genre: "ambient", wantMood: Calm},
		{name: "blues is sad", genre: "blues", wantMood: Sad},
		{name: "uppercase input", genre: "METAL", wantMood: Angry},
		{name: "surrounding whitespace", genre: "  jazz  ", wantMood: Calm},
		{name: "alias hip-hop", genre: "hip-hop", wantMood: Energetic},
		{name: "alias rnb", genre: "rnb", wantMood: Romantic},
		{name: "alias lofi", genre: "lofi", wantMood: Calm},
		{name: "unknown genre", genre: "polka-metal-fusion", wantZero: true},
		{name: "empty string", genre: "", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenreVector(tt.genre)

			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("GenreVector(%q) = %v, want zero vector", tt.genre, got)
				}
				return
			}

			if got.IsZero() {
				t.Fatalf("GenreVector(%q) = zero vector, want signal", tt.genre)
			}
			if mood, _ := got.Dominant(); mood != tt.wantMood {
				t.Errorf("GenreVector(%q) dominant = %q, want %q", tt.genre, mood, tt.wantMood)
			}
		})
	}
}

func TestGenreVector_Metal(t *testing.T) {
	v := GenreVector("metal")

	angry, _ := v.Weight(Angry)
	energetic, _ := v.Weight(Energetic)

	if angry != 0.6 {
		t.Errorf("metal angry weight = %v, want 0.6", angry)
	}
	if energetic != 0.4 {
		t.Errorf("metal energetic weight = %v, want 0.4", energetic)
	}
}

// Every genre entry distributes exactly one unit of mass, so no genre
// is implicitly louder than another before the aggregator weights in.
func TestGenreTableWeightsSumToOne(t *testing.T) {
	for genre, vector := range genreAffinities {
		if sum := vector.Sum(); math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("genre %q weights sum to %v, want 1.0", genre, sum)
		}
	}
}

func TestGenreTableSize(t *testing.T) {
	if len(genreAffinities) < 50 {
		t.Errorf("genre table has %d entries, want at least 50", len(genreAffinities))
	}
}

func TestGenreAliasesResolve(t *testing.T) {
	for alias, canonical := range genreAliases {
		if _, ok := genreAffinities[canonical]; !ok {
			t.Errorf("alias %q points to %q, which is not in the genre table", alias, canonical)
		}
		if _, ok := genreAffinities[alias]; ok {
			t.Errorf("alias %q shadows a real table entry", alias)
		}
	}
}
