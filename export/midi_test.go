package export

import (
	"bytes"
	"math/rand"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatmapper/beatmap"
)

func TestWriteMIDI_OneNotePerMark(t *testing.T) {
	ls := beatmap.Assemble(rand.New(rand.NewSource(4)), 30)
	marks := ls.Level2

	var buf bytes.Buffer
	require.NoError(t, WriteMIDI(&buf, marks, MIDIOptions{Name: "level2", Channel: DrumChannel}))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var ch, key, vel uint8
	starts := 0
	for _, ev := range s.Tracks[0] {
		if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			starts++
			assert.Equal(t, DrumChannel, ch)
		}
	}
	assert.Equal(t, len(marks), starts)
}

func TestWriteMIDI_Timing(t *testing.T) {
	marks := []beatmap.HitEvent{
		{Time: 1.0, LocationX: beatmap.Left, LocationY: beatmap.Bottom, Hit: beatmap.HitTop},
		{Time: 0.5, LocationX: beatmap.Right, LocationY: beatmap.Bottom, Hit: beatmap.HitBottom},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMIDI(&buf, marks, MIDIOptions{Tempo: 120, NoteMillis: 100}))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// at 120 BPM and 960 ticks per quarter, one second is 1920 ticks
	var abs uint32
	var ch, key, vel uint8
	var startTicks []uint32
	var keys []uint8
	for _, ev := range s.Tracks[0] {
		abs += ev.Delta
		if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			startTicks = append(startTicks, abs)
			keys = append(keys, key)
		}
	}
	assert.Equal(t, []uint32{960, 1920}, startTicks)
	assert.Equal(t, []uint8{38, 36}, keys)
}

func TestPreviewNote(t *testing.T) {
	key, vel := PreviewNote(beatmap.HitEvent{LocationX: beatmap.Middle, LocationY: beatmap.Top, Hit: beatmap.HitRight})
	assert.Equal(t, uint8(49), key)
	assert.Equal(t, uint8(110), vel)

	key, vel = PreviewNote(beatmap.HitEvent{})
	assert.Equal(t, uint8(37), key)
	assert.Equal(t, uint8(64), vel)
}
