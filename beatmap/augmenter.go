package beatmap

import (
	"math"

	"beatmapper/debug"
)

// maxPlacementAttempts caps the placement draws for one supplemental mark
const maxPlacementAttempts = 10

// AugmentCount returns the number of supplemental marks Augment attempts
func AugmentCount(baseLen int, fraction float64) int {
	return int(math.Ceil(float64(baseLen) * fraction))
}

// Augment adds marks at times already used by base, each with a placement
// not yet used at that time. Only the new marks are returned, sorted by time.
// A mark whose placement draws all collide is skipped, so fewer than
// AugmentCount marks may come back.
func Augment(rng Source, base []HitEvent, fraction float64) []HitEvent {
	if len(base) == 0 {
		return nil
	}
	rng = sourceOrDefault(rng)

	count := AugmentCount(len(base), fraction)
	occ := OccupancyOf(base)
	extra := make([]HitEvent, 0, count)
	skipped := 0

	for i := 0; i < count; i++ {
		t := base[rng.Intn(len(base))].Time

		p, ok := drawUntil(maxPlacementAttempts,
			func() Placement { return drawPlacement(rng) },
			func(p Placement) bool { return !occ.Taken(t, p) },
		)
		if !ok {
			skipped++
			continue
		}
		occ.Add(t, p)

		extra = append(extra, HitEvent{
			ID:        len(base) + i,
			Time:      t,
			LocationX: p.X,
			LocationY: p.Y,
			Hit:       drawHit(rng),
		})
	}

	if skipped > 0 {
		debug.Log("augment", "skipped %d/%d marks (no free placement)", skipped, count)
	}

	sortByTime(extra)
	return extra
}
