package core

import (
	"math/rand"
)

// NewRandom creates the deterministic generator used for one unit of render work
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomFloat returns a random float64 in [min, max)
func RandomFloat(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with every component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: RandomFloat(random, min, max),
		Y: RandomFloat(random, min, max),
		Z: RandomFloat(random, min, max),
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomInUnitSphere(random)
		// The origin itself cannot be normalized
		if p.LengthSquared() > 1e-160 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomFloat(random, -1, 1), RandomFloat(random, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
