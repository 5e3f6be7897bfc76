package beatmap

// drawUntil calls draw up to attempts times and stops at the first result
// accept approves. It always returns the last draw; ok is false when no
// draw was accepted. Callers decide whether an unaccepted draw is used
// anyway (sampler) or dropped (augmenter).
func drawUntil[T any](attempts int, draw func() T, accept func(T) bool) (v T, ok bool) {
	for i := 0; i < attempts; i++ {
		v = draw()
		if accept(v) {
			return v, true
		}
	}
	return v, false
}
