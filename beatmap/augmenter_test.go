package beatmap

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment_Properties(t *testing.T) {
	rng := seeded(3)
	for _, duration := range []float64{10, 30, 90} {
		for _, fraction := range []float64{0.15, 0.35, 0.5, 1} {
			base := Sample(rng, duration, 0.015)
			extra := Augment(rng, base, fraction)

			assert.LessOrEqual(t, len(extra), int(math.Ceil(float64(len(base))*fraction)))
			assert.True(t, sort.SliceIsSorted(extra, func(i, j int) bool {
				return extra[i].Time < extra[j].Time
			}))

			baseTimes := make(map[float64]bool)
			for _, m := range base {
				baseTimes[m.Time] = true
			}

			// replay acceptance order (by id) against the base occupancy
			byID := append([]HitEvent(nil), extra...)
			sort.Slice(byID, func(i, j int) bool { return byID[i].ID < byID[j].ID })
			occ := OccupancyOf(base)
			for _, m := range byID {
				assert.True(t, baseTimes[m.Time], "time %v not in base", m.Time)
				assert.False(t, occ.Taken(m.Time, m.Placement()), "duplicate placement %s at %v", m.Placement(), m.Time)
				assert.GreaterOrEqual(t, m.ID, len(base))
				occ.Add(m.Time, m.Placement())
			}
		}
	}
}

func TestAugment_EmptyBase(t *testing.T) {
	assert.Nil(t, Augment(seeded(1), nil, 0.5))
}

func TestAugment_OnlyMiddleFreeAtSharedTime(t *testing.T) {
	base := []HitEvent{
		{ID: 0, Time: 5, LocationX: Left, LocationY: Top, Hit: HitTop},
		{ID: 1, Time: 5, LocationX: Left, LocationY: Bottom, Hit: HitTop},
		{ID: 2, Time: 5, LocationX: Right, LocationY: Top, Hit: HitTop},
		{ID: 3, Time: 5, LocationX: Right, LocationY: Bottom, Hit: HitTop},
	}

	for seed := int64(0); seed < 20; seed++ {
		extra := Augment(seeded(seed), base, 1.0)
		require.LessOrEqual(t, len(extra), 2, "only two placements are free")

		seen := make(map[Placement]bool)
		for _, m := range extra {
			assert.Equal(t, 5.0, m.Time)
			assert.Equal(t, Middle, m.LocationX)
			assert.False(t, seen[m.Placement()])
			seen[m.Placement()] = true
		}
	}
}

func TestAugment_SkipsWhenAllPlacementsTaken(t *testing.T) {
	var base []HitEvent
	for i, p := range Placements() {
		base = append(base, HitEvent{ID: i, Time: 2.5, LocationX: p.X, LocationY: p.Y, Hit: HitLeft})
	}

	for seed := int64(0); seed < 10; seed++ {
		extra := Augment(seeded(seed), base, 1.0)
		assert.Empty(t, extra, "every attempt must be skipped")
	}
}

func TestAugment_IDsContinueBaseSequence(t *testing.T) {
	base := []HitEvent{
		{ID: 0, Time: 1, LocationX: Left, LocationY: Top, Hit: HitTop},
		{ID: 1, Time: 2, LocationX: Left, LocationY: Top, Hit: HitTop},
		{ID: 2, Time: 3, LocationX: Left, LocationY: Top, Hit: HitTop},
	}
	extra := Augment(seeded(11), base, 1.0)
	for _, m := range extra {
		assert.GreaterOrEqual(t, m.ID, 3)
		assert.Less(t, m.ID, 6)
	}
}

func TestAugmentCount(t *testing.T) {
	assert.Equal(t, 1, AugmentCount(1, 0.15))
	assert.Equal(t, 4, AugmentCount(10, 0.35))
	assert.Equal(t, 5, AugmentCount(10, 0.5))
	assert.Equal(t, 0, AugmentCount(0, 0.5))
}
