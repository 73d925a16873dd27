package particle

import (
	"math"
	"math/rand/v2"
)

// Random returns an integer in [min, max] as floor(min + r*(max+1-min)).
func Random(rng *rand.Rand, min, max float64) int {
	return int(math.Floor(min + rng.Float64()*(max+1-min)))
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
