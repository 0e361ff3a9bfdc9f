package mood

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr error
	}{
		{name: "plain", input: "happy", want: Happy},
		{name: "uppercase", input: "ANGRY", want: Angry},
		{name: "surrounding whitespace", input: "  melancholic  ", want: Melancholic},
		{name: "unknown category", input: "moody", wantErr: ErrInvalidCategory},
		{name: "empty string", input: "", wantErr: ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCategory(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoriesCanonicalOrder(t *testing.T) {
	want := []Category{Happy, Sad, Energetic, Calm, Angry, Romantic, Melancholic, Upbeat}

	if len(Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(Categories), len(want))
	}
	for i, c := range want {
		if Categories[i] != c {
			t.Errorf("Categories[%d] = %q, want %q", i, Categories[i], c)
		}
		if !c.Valid() {
			t.Errorf("%q.Valid() = false, want true", c)
		}
	}

	if Category("moody").Valid() {
		t.Error(`Category("moody").Valid() = true, want false`)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr error
	}{
		{name: "standard", input: "standard", want: ModeStandard},
		{name: "enhanced", input: "enhanced", want: ModeEnhanced},
		{name: "uppercase", input: "Enhanced", want: ModeEnhanced},
		{name: "unknown", input: "turbo", wantErr: ErrInvalidMode},
		{name: "empty", input: "", wantErr: ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseMode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       ConfidenceTier
	}{
		{name: "zero", confidence: 0.0, want: TierLow},
		{name: "just below medium", confidence: 0.399999, want: TierLow},
		{name: "medium boundary inclusive", confidence: 0.40, want: TierMedium},
		{name: "mid medium", confidence: 0.55, want: TierMedium},
		{name: "just below high", confidence: 0.699999, want: TierMedium},
		{name: "high boundary inclusive", confidence: 0.70, want: TierHigh},
		{name: "full confidence", confidence: 1.0, want: TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.confidence); got != tt.want {
				t.Errorf("TierFor(%v) = %q, want %q", tt.confidence, got, tt.want)
			}
		})
	}
}
