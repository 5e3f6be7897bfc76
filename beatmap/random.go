package beatmap

import "math/rand"

// Source is the random source the generators draw from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// globalSource uses the auto-seeded package-level generator
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

func sourceOrDefault(rng Source) Source {
	if rng == nil {
		return globalSource{}
	}
	return rng
}

func drawPlacement(rng Source) Placement {
	x := locationsX[rng.Intn(len(locationsX))]
	y := locationsY[rng.Intn(len(locationsY))]
	return Placement{X: x, Y: y}
}

func drawHit(rng Source) Hit {
	return hits[rng.Intn(len(hits))]
}
