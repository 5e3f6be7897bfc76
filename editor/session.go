package editor

import (
	"errors"
	"fmt"
	"sync"

	"beatmapper/audio"
	"beatmapper/beatmap"
	"beatmapper/debug"
	"beatmapper/export"
)

var (
	ErrNoTrack         = errors.New("no audio track loaded")
	ErrNoLevels        = errors.New("no levels generated")
	ErrNoSink          = errors.New("no export sink configured")
	ErrNoMarks         = errors.New("active level has no marks")
	ErrMarkIndex       = errors.New("mark index out of range")
	ErrNoFreePlacement = errors.New("no free placement at this time")
)

// Session is the editor state: loaded track, generated levels, the active
// level and the working copy of its marks shown in the mark forms.
type Session struct {
	mu sync.RWMutex

	track  audio.Track
	levels *beatmap.LevelSet // replaced wholesale by Generate
	active beatmap.LevelName // "" until the first Generate

	// Working copy of the active level; edits never reach levels
	marks    []beatmap.HitEvent
	selected int

	rng     beatmap.Source
	tiers   []beatmap.Tier
	sink    export.Sink
	onLevel func(beatmap.LevelName)
}

// Option configures a Session
type Option func(*Session)

// WithSource sets the random source used by Generate
func WithSource(rng beatmap.Source) Option {
	return func(s *Session) { s.rng = rng }
}

// WithTiers overrides the tier settings
func WithTiers(tiers []beatmap.Tier) Option {
	return func(s *Session) { s.tiers = tiers }
}

// WithSink sets where Download delivers exports
func WithSink(sink export.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithLevelObserver registers a callback fired whenever the active level changes
func WithLevelObserver(fn func(beatmap.LevelName)) Option {
	return func(s *Session) { s.onLevel = fn }
}

// New creates an empty session
func New(opts ...Option) *Session {
	s := &Session{
		tiers: beatmap.DefaultTiers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadTrack attaches an audio track and drops any generated levels
func (s *Session) LoadTrack(t audio.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.track = t
	s.levels = nil
	s.active = ""
	s.marks = nil
	s.selected = 0
	if t != nil {
		debug.Log("session", "track loaded: %.2fs", t.Duration())
	}
}

// Track returns the loaded track (nil if none)
func (s *Session) Track() audio.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.track
}

// CanGenerate reports whether a track is loaded
func (s *Session) CanGenerate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.track != nil
}

// Generate builds a fresh LevelSet from the track duration, replaces the
// old one and makes level1 active.
func (s *Session) Generate() error {
	s.mu.RLock()
	track, rng, tiers := s.track, s.rng, s.tiers
	s.mu.RUnlock()

	if track == nil {
		return ErrNoTrack
	}

	// Build outside the lock; readers keep seeing the old set until the swap
	duration := max(0, track.Duration())
	levels := beatmap.AssembleTiers(rng, duration, tiers)

	s.mu.Lock()
	s.levels = &levels
	fn := s.activateLocked(beatmap.Level1)
	s.mu.Unlock()

	debug.Log("session", "generated levels for %.2fs: %d/%d/%d marks",
		duration, len(levels.Level1), len(levels.Level2), len(levels.Level3))

	if fn != nil {
		fn(beatmap.Level1)
	}
	return nil
}

// SelectLevel switches the displayed level. The LevelSet is left untouched;
// the working copy is reset from it.
func (s *Session) SelectLevel(name beatmap.LevelName) error {
	s.mu.Lock()
	if s.levels == nil {
		s.mu.Unlock()
		return ErrNoLevels
	}
	if _, ok := s.levels.Get(name); !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", beatmap.ErrUnknownLevel, name)
	}
	fn := s.activateLocked(name)
	s.mu.Unlock()

	debug.Log("session", "selected %s", name)
	if fn != nil {
		fn(name)
	}
	return nil
}

// activateLocked assumes mu is held and returns the observer to notify
// once the lock is released.
func (s *Session) activateLocked(name beatmap.LevelName) func(beatmap.LevelName) {
	marks, _ := s.levels.Get(name)
	s.active = name
	s.marks = append([]beatmap.HitEvent(nil), marks...)
	s.selected = 0
	return s.onLevel
}

// ActiveLevel returns the displayed level, false before the first Generate
func (s *Session) ActiveLevel() (beatmap.LevelName, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.active != ""
}

// Levels returns a copy of the generated LevelSet
func (s *Session) Levels() (beatmap.LevelSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.levels == nil {
		return beatmap.LevelSet{}, false
	}
	return s.levels.Clone(), true
}

// Marks returns a copy of the working marks of the active level
func (s *Session) Marks() []beatmap.HitEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]beatmap.HitEvent(nil), s.marks...)
}

// Download exports a level (id and formVisible stripped) as <level>.json
// and returns where the sink put it.
func (s *Session) Download(name beatmap.LevelName) (string, error) {
	s.mu.RLock()
	levels, sink := s.levels, s.sink
	s.mu.RUnlock()

	if levels == nil {
		return "", ErrNoLevels
	}
	if sink == nil {
		return "", ErrNoSink
	}
	marks, ok := levels.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", beatmap.ErrUnknownLevel, name)
	}

	path, err := sink.Export(beatmap.ExportOf(marks), string(name)+".json")
	if err != nil {
		return "", fmt.Errorf("download %s: %w", name, err)
	}
	return path, nil
}

// DownloadActive exports the active level
func (s *Session) DownloadActive() (string, error) {
	name, ok := s.ActiveLevel()
	if !ok {
		return "", ErrNoLevels
	}
	return s.Download(name)
}
