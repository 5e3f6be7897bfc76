package beatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancy(t *testing.T) {
	occ := NewOccupancy()
	p := Placement{X: Middle, Y: Top}

	assert.Equal(t, 0, occ.Count(1.5))
	assert.False(t, occ.Taken(1.5, p))
	assert.Len(t, occ.Free(1.5), 6)

	occ.Add(1.5, p)
	occ.Add(1.5, p)
	assert.Equal(t, 2, occ.Count(1.5))
	assert.True(t, occ.Taken(1.5, p))
	assert.False(t, occ.Taken(1.5000001, p))
	assert.Len(t, occ.Free(1.5), 5)
	assert.Equal(t, 1, occ.Len())
}

func TestOccupancyOf(t *testing.T) {
	occ := OccupancyOf([]HitEvent{
		{Time: 1, LocationX: Left, LocationY: Top},
		{Time: 1, LocationX: Right, LocationY: Bottom},
		{Time: 2, LocationX: Left, LocationY: Top},
	})
	assert.Equal(t, 2, occ.Count(1))
	assert.Equal(t, 1, occ.Count(2))
	assert.True(t, occ.Taken(1, Placement{X: Right, Y: Bottom}))
	assert.False(t, occ.Taken(2, Placement{X: Right, Y: Bottom}))
}

func TestPlacements(t *testing.T) {
	ps := Placements()
	assert.Len(t, ps, 6)
	assert.Equal(t, "Left-Top", ps[0].String())
	assert.Equal(t, "Middle-Bottom", ps[5].String())
}
