// Package gravity implements Newton's law of universal gravitation for the
// point masses modeled by the body package.
package gravity

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"solsim/internal/body"
	"solsim/internal/phys"
)

// ErrZeroSeparation is returned by the scalar path when the separation
// between the two masses is zero.
var ErrZeroSeparation = errors.New("zero separation between masses")

// Force returns the magnitude of the gravitational attraction between two
// point masses m1 and m2 (kg) separated by r (m), using the standard
// gravitational constant. A zero separation is a singularity and fails with
// ErrZeroSeparation.
func Force(m1, m2, r float64) (float64, error) {
	return ForceG(m1, m2, r, phys.G)
}

// ForceG is Force with a caller-supplied gravitational constant. Masses are
// not validated; zero or negative masses are accepted.
func ForceG(m1, m2, r, g float64) (float64, error) {
	if r == 0 {
		return 0, ErrZeroSeparation
	}
	return g * m1 * m2 / (r * r), nil
}

// ForceBatch applies Newton's law element-wise over equally sized slices of
// masses and separations, using the standard gravitational constant.
//
// Unlike the scalar path, a zero separation does not fail: the element
// follows floating-point division semantics and comes back non-finite.
// Callers needing strict validation must pre-check separations themselves.
func ForceBatch(m1, m2, r []float64) ([]float64, error) {
	return ForceBatchG(m1, m2, r, phys.G)
}

// ForceBatchG is ForceBatch with a caller-supplied gravitational constant.
func ForceBatchG(m1, m2, r []float64, g float64) ([]float64, error) {
	if len(m1) != len(m2) || len(m1) != len(r) {
		return nil, fmt.Errorf("inputs must have the same length: got %d, %d, %d", len(m1), len(m2), len(r))
	}
	out := make([]float64, len(r))
	floats.MulTo(out, m1, m2)
	floats.Scale(g, out)
	rsq := make([]float64, len(r))
	floats.MulTo(rsq, r, r)
	floats.Div(out, rsq)
	return out, nil
}

// Between returns the gravitational force magnitude between two bodies,
// converting their AU separation to meters. Coincident bodies (for example
// two stars, both pinned to the focal point) fail with ErrZeroSeparation.
func Between(a, b *body.Body) (float64, error) {
	d, err := a.Position().Distance(b.Position())
	if err != nil {
		return 0, err
	}
	return Force(a.Mass(), b.Mass(), d*phys.MetersPerAU)
}
