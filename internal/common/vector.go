package common

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vec represents a point or vector in n-dimensional space.
type Vec []float64

// Zero creates a zero vector of the given dimension.
func Zero(dimension int) Vec {
	return make(Vec, dimension)
}

// NewRandomVec creates a vector with each coordinate drawn independently
// and uniformly from [lo, hi]. A nil rng falls back to the process-wide
// source, so repeated calls without a seeded source produce different
// vectors.
func NewRandomVec(dimension int, lo, hi float64, rng *rand.Rand) Vec {
	v := Zero(dimension)
	for i := range v {
		if rng != nil {
			v[i] = lo + rng.Float64()*(hi-lo)
		} else {
			v[i] = lo + rand.Float64()*(hi-lo)
		}
	}
	return v
}

// Dimension returns the dimension of the vector.
func (v Vec) Dimension() int {
	return len(v)
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vec) Distance(other Vec) (float64, error) {
	if v.Dimension() != other.Dimension() {
		return 0, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	return floats.Distance(v, other, 2), nil
}

// Add adds another vector to this vector, returning a new vector.
func (v Vec) Add(other Vec) (Vec, error) {
	if v.Dimension() != other.Dimension() {
		return nil, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	result := v.Clone()
	floats.Add(result, other)
	return result, nil
}

// Sub subtracts another vector from this vector, returning a new vector.
func (v Vec) Sub(other Vec) (Vec, error) {
	if v.Dimension() != other.Dimension() {
		return nil, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	result := v.Clone()
	floats.Sub(result, other)
	return result, nil
}

// Scale multiplies the vector by a scalar value, returning a new vector.
func (v Vec) Scale(scalar float64) Vec {
	result := v.Clone()
	floats.Scale(scalar, result)
	return result
}

// IsZero reports whether every coordinate is exactly zero.
func (v Vec) IsZero() bool {
	for _, val := range v {
		if val != 0 {
			return false
		}
	}
	return true
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	// Three decimals is enough for log output
	strs := make([]string, len(v))
	for i, val := range v {
		strs[i] = fmt.Sprintf("%.3f", val)
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
}

// Clone creates a deep copy of the vector.
func (v Vec) Clone() Vec {
	clone := make(Vec, len(v))
	copy(clone, v)
	return clone
}
