package editor

import (
	"beatmapper/beatmap"
	"beatmapper/debug"
)

// SelectedMark returns the cursor index into Marks
func (s *Session) SelectedMark() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// NextMark moves the cursor forward, stopping at the last mark
func (s *Session) NextMark() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < len(s.marks)-1 {
		s.selected++
	}
	return s.selected
}

// PrevMark moves the cursor back, stopping at the first mark
func (s *Session) PrevMark() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected > 0 {
		s.selected--
	}
	return s.selected
}

// SetSelectedMark moves the cursor to i
func (s *Session) SetSelectedMark(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.marks) {
		return ErrMarkIndex
	}
	s.selected = i
	return nil
}

// ToggleForm flips the form visibility of mark i
func (s *Session) ToggleForm(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.marks) {
		return ErrMarkIndex
	}
	s.marks[i].FormVisible = !s.marks[i].FormVisible
	return nil
}

// EditMark changes placement and hit of working mark i
func (s *Session) EditMark(i int, x beatmap.LocationX, y beatmap.LocationY, hit beatmap.Hit) error {
	if _, err := beatmap.ParseLocationX(string(x)); err != nil {
		return err
	}
	if _, err := beatmap.ParseLocationY(string(y)); err != nil {
		return err
	}
	if _, err := beatmap.ParseHit(string(hit)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.marks) {
		return ErrMarkIndex
	}
	s.marks[i].LocationX = x
	s.marks[i].LocationY = y
	s.marks[i].Hit = hit
	return nil
}

// AddExtraMark inserts a mark right after the selected one, at the same
// time, on the first placement still free there. Its id continues the
// working copy's length.
func (s *Session) AddExtraMark() (beatmap.HitEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.marks) == 0 {
		return beatmap.HitEvent{}, ErrNoMarks
	}

	cur := s.marks[s.selected]
	free := beatmap.OccupancyOf(s.marks).Free(cur.Time)
	if len(free) == 0 {
		return beatmap.HitEvent{}, ErrNoFreePlacement
	}

	mark := beatmap.HitEvent{
		ID:          len(s.marks),
		Time:        cur.Time,
		LocationX:   free[0].X,
		LocationY:   free[0].Y,
		Hit:         cur.Hit,
		FormVisible: true,
	}

	at := s.selected + 1
	s.marks = append(s.marks, beatmap.HitEvent{})
	copy(s.marks[at+1:], s.marks[at:])
	s.marks[at] = mark

	debug.Log("session", "extra mark %d at %.3fs (%s)", mark.ID, mark.Time, free[0])
	return mark, nil
}
