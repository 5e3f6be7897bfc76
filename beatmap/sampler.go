package beatmap

import (
	"math"
	"sort"
)

// maxTimeRedraws caps how often the sampler redraws a time that already
// holds maxMarksPerTime marks before accepting the collision.
const (
	maxTimeRedraws  = 10
	maxMarksPerTime = 2
)

// SampleCount returns how many marks Sample produces. The count grows with
// the square of the duration.
func SampleCount(duration, density float64) int {
	return int(math.Ceil(duration * density * duration))
}

// Sample generates the base marks for one tier, sorted by time.
// IDs are the generation index (before sorting).
func Sample(rng Source, duration, density float64) []HitEvent {
	rng = sourceOrDefault(rng)
	count := SampleCount(duration, density)
	if count <= 0 {
		return []HitEvent{}
	}

	marks := make([]HitEvent, 0, count)
	occ := NewOccupancy()

	drawTime := func() float64 { return rng.Float64() * duration }
	hasRoom := func(t float64) bool { return occ.Count(t) < maxMarksPerTime }

	for i := 0; i < count; i++ {
		// first draw + redraws; a still-crowded time is used anyway
		t, _ := drawUntil(1+maxTimeRedraws, drawTime, hasRoom)

		p := drawPlacement(rng)
		occ.Add(t, p)

		marks = append(marks, HitEvent{
			ID:        i,
			Time:      t,
			LocationX: p.X,
			LocationY: p.Y,
			Hit:       drawHit(rng),
		})
	}

	sortByTime(marks)
	return marks
}

func sortByTime(marks []HitEvent) {
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].Time < marks[j].Time
	})
}
