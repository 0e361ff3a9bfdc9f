package mood

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestNewVector(t *testing.T) {
	v, err := NewVector(map[Category]float64{Happy: 0.6, Sad: 0.4})
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	if got, _ := v.Weight(Happy); got != 0.6 {
		t.Errorf("Weight(Happy) = %v, want 0.6", got)
	}
	if got, _ := v.Weight(Sad); got != 0.4 {
		t.Errorf("Weight(Sad) = %v, want 0.4", got)
	}
	if got, _ := v.Weight(Calm); got != 0 {
		t.Errorf("Weight(Calm) = %v, want 0", got)
	}
}

func TestNewVector_InvalidCategory(t *testing.T) {
	_, err := NewVector(map[Category]float64{"moody": 1.0})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("NewVector() error = %v, want ErrInvalidCategory", err)
	}
}

func TestWeight_InvalidCategory(t *testing.T) {
	var v AffinityVector
	_, err := v.Weight("bogus")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Weight() error = %v, want ErrInvalidCategory", err)
	}
}

func TestNormalized(t *testing.T) {
	v := AffinityVector{happyIdx: 2, sadIdx: 1, angryIdx: 1}
	n := v.Normalized()

	if got := n.Sum(); math.Abs(got-1.0) > sumTolerance {
		t.Errorf("Normalized().Sum() = %v, want 1.0", got)
	}
	if got := n[happyIdx]; got != 0.5 {
		t.Errorf("normalized happy = %v, want 0.5", got)
	}
	if got := n[sadIdx]; got != 0.25 {
		t.Errorf("normalized sad = %v, want 0.25", got)
	}

	// The original is untouched.
	if v[happyIdx] != 2 {
		t.Errorf("Normalized() mutated the receiver: happy = %v", v[happyIdx])
	}
}

func TestNormalized_ZeroSentinel(t *testing.T) {
	var v AffinityVector
	n := v.Normalized()

	if !n.IsZero() {
		t.Errorf("Normalized() of zero vector = %v, want zero sentinel", n)
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name       string
		vector     AffinityVector
		wantMood   Category
		wantWeight float64
	}{
		{
			name:       "clear winner",
			vector:     AffinityVector{sadIdx: 0.7, happyIdx: 0.3},
			wantMood:   Sad,
			wantWeight: 0.7,
		},
		{
			name:       "tie resolves to canonical order",
			vector:     AffinityVector{upbeatIdx: 0.5, energeticIdx: 0.5},
			wantMood:   Energetic,
			wantWeight: 0.5,
		},
		{
			name:       "all-way tie picks first category",
			vector:     AffinityVector{0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125},
			wantMood:   Happy,
			wantWeight: 0.125,
		},
		{
			name:       "zero vector picks first category at zero",
			vector:     AffinityVector{},
			wantMood:   Happy,
			wantWeight: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood, weight := tt.vector.Dominant()
			if mood != tt.wantMood {
				t.Errorf("Dominant() mood = %q, want %q", mood, tt.wantMood)
			}
			if weight != tt.wantWeight {
				t.Errorf("Dominant() weight = %v, want %v", weight, tt.wantWeight)
			}
		})
	}
}

func TestVectorJSON(t *testing.T) {
	v := AffinityVector{happyIdx: 0.5, melancholicIdx: 0.25, upbeatIdx: 0.25}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Keys appear in canonical category order so serialized results are
	// byte-reproducible.
	want := `{"happy":0.5,"sad":0,"energetic":0,"calm":0,"angry":0,"romantic":0,"melancholic":0.25,"upbeat":0.25}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back AffinityVector
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != v {
		t.Errorf("round trip = %v, want %v", back, v)
	}
}

func TestVectorJSON_UnknownKeyRejected(t *testing.T) {
	var v AffinityVector
	err := json.Unmarshal([]byte(`{"moody":1.0}`), &v)
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Unmarshal() error = %v, want ErrInvalidCategory", err)
	}
}
