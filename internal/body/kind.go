package body

import "solsim/internal/phys"

// Kind classifies a celestial body. The kind selects the default display
// name, the unit used when reporting mass, and whether the body is pinned
// to the focal point. The physics is identical for every kind.
type Kind int

const (
	Object Kind = iota
	Star
	Planet
	GasPlanet
	TerrestrialPlanet
	DwarfPlanet
	Asteroid
	Comet
)

// kindSpec carries the per-kind formatting and placement rules.
type kindSpec struct {
	defaultName string
	massUnit    string  // label used in summaries
	massRef     float64 // divisor applied to the mass before display
	pinned      bool    // position and velocity forced to the zero vector
}

var kindSpecs = map[Kind]kindSpec{
	Object:            {defaultName: "Object", massUnit: "kg", massRef: 1},
	Star:              {defaultName: "Star", massUnit: "M_sun", massRef: phys.SolarMass, pinned: true},
	Planet:            {defaultName: "Planet", massUnit: "kg", massRef: 1},
	GasPlanet:         {defaultName: "Planet", massUnit: "M_jup", massRef: phys.JupiterMass},
	TerrestrialPlanet: {defaultName: "Planet", massUnit: "M_earth", massRef: phys.EarthMass},
	DwarfPlanet:       {defaultName: "Planet", massUnit: "M_pluto", massRef: phys.PlutoMass},
	Asteroid:          {defaultName: "Asteroid", massUnit: "kg", massRef: 1},
	Comet:             {defaultName: "Comet", massUnit: "kg", massRef: 1},
}

func (k Kind) spec() kindSpec {
	if s, ok := kindSpecs[k]; ok {
		return s
	}
	return kindSpecs[Object]
}

// DefaultName returns the display name used when a body of this kind is
// constructed without an explicit name.
func (k Kind) DefaultName() string {
	return k.spec().defaultName
}

// Pinned reports whether bodies of this kind occupy the focal point.
func (k Kind) Pinned() bool {
	return k.spec().pinned
}

func (k Kind) String() string {
	switch k {
	case Object:
		return "Object"
	case Star:
		return "Star"
	case Planet:
		return "Planet"
	case GasPlanet:
		return "GasPlanet"
	case TerrestrialPlanet:
		return "TerrestrialPlanet"
	case DwarfPlanet:
		return "DwarfPlanet"
	case Asteroid:
		return "Asteroid"
	case Comet:
		return "Comet"
	default:
		return "Object"
	}
}
