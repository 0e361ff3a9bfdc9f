package mood

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// sumTolerance is the floating-point tolerance for "sums to 1.0" checks.
const sumTolerance = 1e-9

// AffinityVector maps each mood category to a non-negative weight,
// indexed by the canonical category order. Vectors produced by the
// individual signal sources are unnormalized; the aggregation step
// normalizes exactly once. The zero value is the "no signal" sentinel.
type AffinityVector [numCategories]float64

// NewVector builds a vector from per-category weights. A key outside
// the fixed category set is a caller contract violation and returns
// ErrInvalidCategory.
func NewVector(weights map[Category]float64) (AffinityVector, error) {
	var v AffinityVector
	for c, w := range weights {
		i, ok := categoryIndex[c]
		if !ok {
			return AffinityVector{}, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
		}
		v[i] = w
	}
	return v, nil
}

// Weight returns the weight for a category. A category outside the
// fixed set is a caller contract violation and returns ErrInvalidCategory.
func (v AffinityVector) Weight(c Category) (float64, error) {
	i, ok := categoryIndex[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	return v[i], nil
}

// Sum returns the total weight across all categories.
func (v AffinityVector) Sum() float64 {
	return floats.Sum(v[:])
}

// IsZero reports whether the vector carries no signal at all.
func (v AffinityVector) IsZero() bool {
	return v.Sum() <= 0
}

// Normalized returns a copy scaled so the weights sum to 1.0. The
// all-zero sentinel is preserved as-is, never converted to a uniform
// distribution.
func (v AffinityVector) Normalized() AffinityVector {
	sum := v.Sum()
	if sum <= 0 {
		return AffinityVector{}
	}
	out := v
	floats.Scale(1/sum, out[:])
	return out
}

// Dominant returns the category with the maximum weight and that
// weight. Ties resolve to the category appearing first in canonical
// order, independent of how the vector was built.
func (v AffinityVector) Dominant() (Category, float64) {
	best := 0
	for i := 1; i < numCategories; i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return Categories[best], v[best]
}

// addScaled accumulates scale*other into v.
func (v *AffinityVector) addScaled(scale float64, other AffinityVector) {
	floats.AddScaled(v[:], scale, other[:])
}

// scale multiplies every weight in place.
func (v *AffinityVector) scale(s float64) {
	floats.Scale(s, v[:])
}

// clampNonNegative zeroes any negative weights in place.
func (v *AffinityVector) clampNonNegative() {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
}

// MarshalJSON encodes the vector as an object keyed by category, in
// canonical order so serialized results are reproducible byte for byte.
func (v AffinityVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", string(c))
		w, err := json.Marshal(v[i])
		if err != nil {
			return nil, err
		}
		buf.Write(w)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by category. Unknown keys are
// rejected since stored distributions only ever contain the fixed set.
func (v *AffinityVector) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out AffinityVector
	for k, w := range raw {
		i, ok := categoryIndex[Category(k)]
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidCategory, k)
		}
		out[i] = w
	}
	*v = out
	return nil
}
