// Package body models point-mass objects in a solar-system-like
// configuration: a star pinned to the focal point plus planets, asteroids
// and comets placed around it. Positions are measured in AU relative to the
// focal point, velocities in km/s, masses in kilograms.
package body

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"solsim/internal/common"
)

// Limits on our solar system sizes (AU) and velocities (km/s), used when a
// position or velocity is not supplied at construction.
const (
	MinimumSize     = 0.3
	MaximumSize     = 50.0
	MinimumVelocity = 20.0
	MaximumVelocity = 50.0
)

// Bodies live in a 2-D plane.
const spaceDim = 2

// ErrInvalidVectorShape is returned when an explicitly supplied position or
// velocity has fewer than two components.
var ErrInvalidVectorShape = errors.New("invalid vector shape")

// ShapeError reports which field failed the two-component requirement and
// the dimension it was given. It unwraps to ErrInvalidVectorShape.
type ShapeError struct {
	Field string // "position" or "velocity"
	Dim   int    // dimension of the supplied vector
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: expected at least %d components for %s, got %d",
		ErrInvalidVectorShape, spaceDim, e.Field, e.Dim)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidVectorShape }

// Body represents a single object in the solar system. Fields are set once
// at construction and never mutated through this API.
type Body struct {
	id       string
	kind     Kind
	name     string
	mass     float64    // kilograms; never validated, zero or negative is accepted
	position common.Vec // AU, relative to the focal point
	velocity common.Vec // km/s
}

// New creates a body of the given kind with the kind's default name.
// See NewNamed.
func New(kind Kind, mass float64, position, velocity common.Vec, rng *rand.Rand) (*Body, error) {
	return NewNamed(kind, kind.DefaultName(), mass, position, velocity, rng)
}

// NewNamed creates a body of the given kind.
//
// A nil position or velocity is drawn per-axis uniformly at random from
// [MinimumSize, MaximumSize] AU and [MinimumVelocity, MaximumVelocity] km/s
// respectively; a nil rng falls back to the process-wide source. An
// explicitly supplied vector must have at least two components, otherwise
// construction fails with a *ShapeError before any other field is
// considered. Supplied vectors are copied.
//
// Pinned kinds (Star) occupy the focal point: position and velocity are the
// zero vector unconditionally and the random path is never taken.
func NewNamed(kind Kind, name string, mass float64, position, velocity common.Vec, rng *rand.Rand) (*Body, error) {
	b := &Body{
		id:   fmt.Sprintf("body-%s", uuid.NewString()[:8]),
		kind: kind,
		name: name,
		mass: mass,
	}

	if kind.Pinned() {
		b.position = common.Zero(spaceDim)
		b.velocity = common.Zero(spaceDim)
		return b, nil
	}

	if position != nil && position.Dimension() < spaceDim {
		return nil, &ShapeError{Field: "position", Dim: position.Dimension()}
	}
	if velocity != nil && velocity.Dimension() < spaceDim {
		return nil, &ShapeError{Field: "velocity", Dim: velocity.Dimension()}
	}

	if position != nil {
		b.position = position.Clone()
	} else {
		b.position = common.NewRandomVec(spaceDim, MinimumSize, MaximumSize, rng)
	}
	if velocity != nil {
		b.velocity = velocity.Clone()
	} else {
		b.velocity = common.NewRandomVec(spaceDim, MinimumVelocity, MaximumVelocity, rng)
	}
	return b, nil
}

// ID returns the unique identifier of the body.
func (b *Body) ID() string {
	return b.id
}

// Kind returns the body's classification.
func (b *Body) Kind() Kind {
	return b.kind
}

// Name returns the display name of the body.
func (b *Body) Name() string {
	return b.name
}

// Mass returns the mass of the body in kilograms.
func (b *Body) Mass() float64 {
	return b.mass
}

// Position returns the position of the body in AU relative to the focal
// point. A clone is returned to prevent modification of the internal state.
func (b *Body) Position() common.Vec {
	return b.position.Clone()
}

// Velocity returns the velocity of the body in km/s. A clone is returned to
// prevent modification of the internal state.
func (b *Body) Velocity() common.Vec {
	return b.velocity.Clone()
}

// Summary returns a human-readable projection of the body's state. The mass
// is reported in the kind's display unit; pinned bodies omit position and
// velocity.
func (b *Body) Summary() string {
	spec := b.kind.spec()
	m := b.mass / spec.massRef
	if spec.pinned {
		return fmt.Sprintf("%s: Mass = %g %s", b.name, m, spec.massUnit)
	}
	return fmt.Sprintf("%s: Mass = %g %s, position = (%g, %g) AU, velocity = (%g, %g) km/s",
		b.name, m, spec.massUnit,
		b.position[0], b.position[1], b.velocity[0], b.velocity[1])
}

// String representation for logging.
func (b *Body) String() string {
	return b.Summary()
}
