package beatmap

// slot tracks what already sits at one exact time value
type slot struct {
	count int
	taken map[Placement]bool
}

// Occupancy maps an exact time value to the marks already placed there.
// Times are compared as exact float64 keys.
type Occupancy struct {
	slots map[float64]*slot
}

// NewOccupancy creates an empty occupancy map
func NewOccupancy() *Occupancy {
	return &Occupancy{slots: make(map[float64]*slot)}
}

// OccupancyOf builds an occupancy map from existing events
func OccupancyOf(events []HitEvent) *Occupancy {
	o := NewOccupancy()
	for _, e := range events {
		o.Add(e.Time, e.Placement())
	}
	return o
}

// Count returns how many marks occupy time t
func (o *Occupancy) Count(t float64) int {
	if s, ok := o.slots[t]; ok {
		return s.count
	}
	return 0
}

// Taken reports whether placement p is already used at time t
func (o *Occupancy) Taken(t float64, p Placement) bool {
	if s, ok := o.slots[t]; ok {
		return s.taken[p]
	}
	return false
}

// Free returns the placements not yet used at time t, in draw order
func (o *Occupancy) Free(t float64) []Placement {
	var out []Placement
	for _, p := range Placements() {
		if !o.Taken(t, p) {
			out = append(out, p)
		}
	}
	return out
}

// Add records a mark with placement p at time t
func (o *Occupancy) Add(t float64, p Placement) {
	s, ok := o.slots[t]
	if !ok {
		s = &slot{taken: make(map[Placement]bool)}
		o.slots[t] = s
	}
	s.count++
	s.taken[p] = true
}

// Len returns the number of distinct times recorded
func (o *Occupancy) Len() int {
	return len(o.slots)
}
