// Package scene owns the body catalog and the per-frame walk that
// turns orbital parameters into draw calls.
package scene

// Body holds the orbital parameters of one body. Values are stylized
// for a readable scene, not physically accurate.
type Body struct {
	Name string

	RevolutionSpeed float32 // radians per second around the parent
	OrbitalDistance float32 // world units from the parent
	SpinSpeed       float32 // radians per second around its own axis
	Scale           float32 // uniform mesh scale

	// Parent is the catalog index of the body this one orbits, or -1
	// for the sun, which is anchored at the world origin. A body must
	// appear after its parent in the catalog.
	Parent int

	Info Info
}

// Info holds the fact sheet shown in the overlay when a body is focused.
type Info struct {
	Distance       string // mean distance from the sun
	Radius         string
	Moons          string
	RotationPeriod string // around its own axis
	OrbitalPeriod  string // around the sun
}

// Catalog returns the ordered body list: sun first, planets in
// increasing orbital distance, and the moon directly after Earth so
// its anchor is computed in the same frame pass.
func Catalog() []Body {
	return []Body{
		{
			Name:            "Sun",
			RevolutionSpeed: 0,
			OrbitalDistance: 0,
			SpinSpeed:       0.1,
			Scale:           1.25,
			Parent:          -1,
			Info: Info{
				Distance:       "0 km",
				Radius:         "696,340 km",
				Moons:          "0",
				RotationPeriod: "27 days",
				OrbitalPeriod:  "-",
			},
		},
		{
			Name:            "Mercury",
			RevolutionSpeed: 1.60,
			OrbitalDistance: 2.5,
			SpinSpeed:       0.07,
			Scale:           0.12,
			Parent:          0,
			Info: Info{
				Distance:       "57.9 million km",
				Radius:         "2,439 km",
				Moons:          "0",
				RotationPeriod: "59 days",
				OrbitalPeriod:  "88 days",
			},
		},
		{
			Name:            "Venus",
			RevolutionSpeed: 1.17,
			OrbitalDistance: 3.5,
			SpinSpeed:       0.017,
			Scale:           0.22,
			Parent:          0,
			Info: Info{
				Distance:       "108.2 million km",
				Radius:         "6,051 km",
				Moons:          "0",
				RotationPeriod: "243 days",
				OrbitalPeriod:  "225 days",
			},
		},
		{
			Name:            "Earth",
			RevolutionSpeed: 1.00,
			OrbitalDistance: 4.6,
			SpinSpeed:       4.0,
			Scale:           0.24,
			Parent:          0,
			Info: Info{
				Distance:       "149.6 million km",
				Radius:         "6,371 km",
				Moons:          "1",
				RotationPeriod: "24 hours",
				OrbitalPeriod:  "365 days",
			},
		},
		{
			Name:            "Moon",
			RevolutionSpeed: 5.0,
			OrbitalDistance: 0.6,
			SpinSpeed:       0.15,
			Scale:           0.07,
			Parent:          3, // Earth
			Info: Info{
				Distance:       "384,400 km from Earth",
				Radius:         "1,737 km",
				Moons:          "-",
				RotationPeriod: "27 days",
				OrbitalPeriod:  "27 days",
			},
		},
		{
			Name:            "Mars",
			RevolutionSpeed: 0.81,
			OrbitalDistance: 5.8,
			SpinSpeed:       3.9,
			Scale:           0.16,
			Parent:          0,
			Info: Info{
				Distance:       "227.9 million km",
				Radius:         "3,389 km",
				Moons:          "2",
				RotationPeriod: "25 hours",
				OrbitalPeriod:  "687 days",
			},
		},
		{
			Name:            "Jupiter",
			RevolutionSpeed: 0.44,
			OrbitalDistance: 7.6,
			SpinSpeed:       9.6,
			Scale:           0.55,
			Parent:          0,
			Info: Info{
				Distance:       "778.5 million km",
				Radius:         "69,911 km",
				Moons:          "95",
				RotationPeriod: "10 hours",
				OrbitalPeriod:  "12 years",
			},
		},
		{
			Name:            "Saturn",
			RevolutionSpeed: 0.33,
			OrbitalDistance: 9.8,
			SpinSpeed:       8.9,
			Scale:           0.47,
			Parent:          0,
			Info: Info{
				Distance:       "1.43 billion km",
				Radius:         "58,232 km",
				Moons:          "146",
				RotationPeriod: "11 hours",
				OrbitalPeriod:  "29 years",
			},
		},
		{
			Name:            "Uranus",
			RevolutionSpeed: 0.23,
			OrbitalDistance: 11.8,
			SpinSpeed:       5.6,
			Scale:           0.34,
			Parent:          0,
			Info: Info{
				Distance:       "2.87 billion km",
				Radius:         "25,362 km",
				Moons:          "28",
				RotationPeriod: "17 hours",
				OrbitalPeriod:  "84 years",
			},
		},
		{
			Name:            "Neptune",
			RevolutionSpeed: 0.18,
			OrbitalDistance: 13.6,
			SpinSpeed:       6.0,
			Scale:           0.33,
			Parent:          0,
			Info: Info{
				Distance:       "4.5 billion km",
				Radius:         "24,622 km",
				Moons:          "16",
				RotationPeriod: "16 hours",
				OrbitalPeriod:  "165 years",
			},
		},
	}
}
