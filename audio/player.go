package audio

import (
	"sync"
	"time"
)

// Player is the playback transport: it tracks the playhead of a track
// against a clock. Sound output is left to the host.
type Player struct {
	mu       sync.Mutex
	duration float64
	offset   float64   // position when last paused
	started  time.Time // zero while paused
	now      func() time.Time
	onEnded  func()
}

// NewPlayer creates a paused player for a track
func NewPlayer(t Track) *Player {
	return &Player{
		duration: t.Duration(),
		now:      time.Now,
	}
}

// SetClock replaces the time source
func (p *Player) SetClock(now func() time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now
}

// OnEnded registers a callback fired once when playback reaches the end
func (p *Player) OnEnded(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEnded = fn
}

func (p *Player) Duration() float64 {
	return p.duration
}

// Position returns the playhead in seconds, clamped to the duration.
// Reaching the end pauses the player.
func (p *Player) Position() float64 {
	p.mu.Lock()
	pos, ended := p.positionLocked()
	fn := p.onEnded
	p.mu.Unlock()

	if ended && fn != nil {
		fn()
	}
	return pos
}

// positionLocked assumes mu is held
func (p *Player) positionLocked() (pos float64, ended bool) {
	if p.started.IsZero() {
		return p.offset, false
	}
	pos = p.offset + p.now().Sub(p.started).Seconds()
	if pos >= p.duration {
		p.offset = p.duration
		p.started = time.Time{}
		return p.duration, true
	}
	return pos, false
}

// Playing reports whether the playhead is moving
func (p *Player) Playing() bool {
	p.Position() // settle end-of-track
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.started.IsZero()
}

// Play starts or resumes playback; at the end it restarts from 0
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started.IsZero() {
		return
	}
	if p.offset >= p.duration {
		p.offset = 0
	}
	p.started = p.now()
}

// Pause stops the playhead where it is
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started.IsZero() {
		return
	}
	p.offset, _ = p.positionLocked()
	p.started = time.Time{}
}

// Toggle flips between play and pause and returns the new playing state
func (p *Player) Toggle() bool {
	if p.Playing() {
		p.Pause()
		return false
	}
	p.Play()
	return true
}

// Seek moves the playhead, clamped to [0, duration]
func (p *Player) Seek(pos float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos = max(0, min(pos, p.duration))
	p.offset = pos
	if !p.started.IsZero() {
		p.started = p.now()
	}
}

// Progress returns the playhead as a percentage of the duration
func (p *Player) Progress() float64 {
	if p.duration <= 0 {
		return 0
	}
	return p.Position() / p.duration * 100
}
