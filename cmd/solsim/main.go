package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"solsim/internal/body"
	"solsim/internal/common"
	"solsim/internal/gravity"
	"solsim/internal/phys"
)

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Build a small solar system ---
	sun, err := body.NewNamed(body.Star, "Sun", phys.SolarMass, nil, nil, rng)
	if err != nil {
		log.Fatalf("Error creating star: %v", err)
	}

	earth, err := body.NewNamed(body.TerrestrialPlanet, "Earth", phys.EarthMass,
		common.Vec{1.0, 0.0}, common.Vec{0.0, 29.8}, rng)
	if err != nil {
		log.Fatalf("Error creating planet: %v", err)
	}

	jupiter, err := body.NewNamed(body.GasPlanet, "Jupiter", phys.JupiterMass,
		common.Vec{5.2, 0.0}, common.Vec{0.0, 13.1}, rng)
	if err != nil {
		log.Fatalf("Error creating planet: %v", err)
	}

	// Randomly placed minor bodies
	asteroid, err := body.New(body.Asteroid, 9.4e20, nil, nil, rng)
	if err != nil {
		log.Fatalf("Error creating asteroid: %v", err)
	}
	comet, err := body.New(body.Comet, 2.2e14, nil, nil, rng)
	if err != nil {
		log.Fatalf("Error creating comet: %v", err)
	}

	bodies := []*body.Body{sun, earth, jupiter, asteroid, comet}

	fmt.Println("--- Solar system ---")
	for _, b := range bodies {
		fmt.Printf("  [%s] %s\n", b.ID(), b.Summary())
	}

	// --- Gravitational pull of the star on each body ---
	fmt.Println("--- Force toward the star ---")
	for _, b := range bodies[1:] {
		f, err := gravity.Between(sun, b)
		if err != nil {
			log.Fatalf("Error computing force on %s: %v", b.Name(), err)
		}
		fmt.Printf("  %-10s %.4g N\n", b.Name(), f)
	}
}
