package editor

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatmapper/audio"
	"beatmapper/beatmap"
	"beatmapper/export"
)

// memorySink records exports instead of writing files
type memorySink struct {
	files map[string]any
	err   error
}

func (m *memorySink) Export(v any, filename string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.files == nil {
		m.files = make(map[string]any)
	}
	m.files[filename] = v
	return "mem://" + filename, nil
}

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSource(rand.New(rand.NewSource(21)))}, opts...)
	return New(opts...)
}

func TestGenerate_RequiresTrack(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.CanGenerate())
	assert.ErrorIs(t, s.Generate(), ErrNoTrack)

	_, ok := s.ActiveLevel()
	assert.False(t, ok)
}

func TestGenerate_SelectsLevelOneAndNotifies(t *testing.T) {
	var seen []beatmap.LevelName
	s := newSession(t, WithLevelObserver(func(n beatmap.LevelName) { seen = append(seen, n) }))
	s.LoadTrack(audio.Static(60))
	require.True(t, s.CanGenerate())

	require.NoError(t, s.Generate())
	name, ok := s.ActiveLevel()
	require.True(t, ok)
	assert.Equal(t, beatmap.Level1, name)
	assert.Equal(t, []beatmap.LevelName{beatmap.Level1}, seen)

	levels, ok := s.Levels()
	require.True(t, ok)
	assert.Equal(t, levels.Level1, s.Marks())

	require.NoError(t, s.SelectLevel(beatmap.Level3))
	require.NoError(t, s.Generate())
	name, _ = s.ActiveLevel()
	assert.Equal(t, beatmap.Level1, name, "generate resets the active level")
	assert.Equal(t, []beatmap.LevelName{beatmap.Level1, beatmap.Level3, beatmap.Level1}, seen)
}

func TestGenerate_ReplacesLevelSet(t *testing.T) {
	s := newSession(t)
	s.LoadTrack(audio.Static(45))
	require.NoError(t, s.Generate())
	first, _ := s.Levels()

	require.NoError(t, s.Generate())
	second, _ := s.Levels()
	assert.NotEqual(t, first.Level3, second.Level3)
}

func TestSelectLevel_DoesNotMutateLevels(t *testing.T) {
	s := newSession(t)
	s.LoadTrack(audio.Static(50))

	assert.ErrorIs(t, s.SelectLevel(beatmap.Level2), ErrNoLevels)

	require.NoError(t, s.Generate())
	before, _ := s.Levels()

	for _, n := range []beatmap.LevelName{beatmap.Level2, beatmap.Level3, beatmap.Level1, beatmap.Level2} {
		require.NoError(t, s.SelectLevel(n))
		active, _ := s.ActiveLevel()
		assert.Equal(t, n, active)
		want, _ := before.Get(n)
		assert.Equal(t, want, s.Marks())
	}

	after, _ := s.Levels()
	assert.Equal(t, before, after)

	err := s.SelectLevel("level9")
	assert.ErrorIs(t, err, beatmap.ErrUnknownLevel)
	active, _ := s.ActiveLevel()
	assert.Equal(t, beatmap.Level2, active)
}

func TestLoadTrack_ClearsLevels(t *testing.T) {
	s := newSession(t)
	s.LoadTrack(audio.Static(30))
	require.NoError(t, s.Generate())

	s.LoadTrack(audio.Static(12))
	_, ok := s.Levels()
	assert.False(t, ok)
	assert.Empty(t, s.Marks())
	assert.Equal(t, 12.0, s.Track().Duration())
}

func TestDownload(t *testing.T) {
	sink := &memorySink{}
	s := newSession(t, WithSink(sink))
	s.LoadTrack(audio.Static(40))

	_, err := s.Download(beatmap.Level1)
	assert.ErrorIs(t, err, ErrNoLevels)

	require.NoError(t, s.Generate())
	require.NoError(t, s.SelectLevel(beatmap.Level2))

	path, err := s.DownloadActive()
	require.NoError(t, err)
	assert.Equal(t, "mem://level2.json", path)

	levels, _ := s.Levels()
	got, ok := sink.files["level2.json"].(beatmap.ExportFile)
	require.True(t, ok)
	assert.Equal(t, beatmap.ExportOf(levels.Level2), got)

	_, err = s.Download("level0")
	assert.ErrorIs(t, err, beatmap.ErrUnknownLevel)
}

func TestDownload_SinkErrors(t *testing.T) {
	s := newSession(t)
	s.LoadTrack(audio.Static(20))
	require.NoError(t, s.Generate())

	_, err := s.Download(beatmap.Level1)
	assert.ErrorIs(t, err, ErrNoSink)

	boom := errors.New("disk full")
	s = newSession(t, WithSink(&memorySink{err: boom}))
	s.LoadTrack(audio.Static(20))
	require.NoError(t, s.Generate())
	_, err = s.Download(beatmap.Level1)
	assert.ErrorIs(t, err, boom)
}

func TestDownload_DirSink(t *testing.T) {
	dir := t.TempDir()
	s := newSession(t, WithSink(export.DirSink{Dir: dir}))
	s.LoadTrack(audio.Static(25))
	require.NoError(t, s.Generate())

	path, err := s.Download(beatmap.Level3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "level3.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	levels, _ := s.Levels()
	want, err := beatmap.EncodeExport(levels.Level3)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))
}

func TestWithTiers(t *testing.T) {
	s := newSession(t, WithTiers([]beatmap.Tier{
		{Name: beatmap.Level1, Density: 1, Fraction: 0.5},
	}))
	s.LoadTrack(audio.Static(3))
	require.NoError(t, s.Generate())

	levels, _ := s.Levels()
	assert.GreaterOrEqual(t, len(levels.Level1), 9)
	assert.Empty(t, levels.Level2)
	assert.Empty(t, levels.Level3)
}
