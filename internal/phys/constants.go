// Package phys holds the physical constants shared by the body model and
// the force law. Values are SI, taken from CODATA 2018 and the IAU nominal
// definitions.
package phys

const (
	// G is the Newtonian constant of gravitation in m^3 kg^-1 s^-2.
	G = 6.67430e-11

	// Reference masses in kilograms, used for mass display conversions.
	SolarMass   = 1.98841e30
	JupiterMass = 1.89813e27
	EarthMass   = 5.97217e24
	PlutoMass   = 1.309e22

	// MetersPerAU converts astronomical units to meters (IAU 2012 exact).
	MetersPerAU = 1.495978707e11
)
