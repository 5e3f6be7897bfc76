package export

import (
	"io"
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"beatmapper/beatmap"
)

const ticksPerQuarter = 960

// GM drum channel (10, zero based)
const DrumChannel uint8 = 9

// Each placement plays its own GM drum sound
var placementNotes = map[beatmap.Placement]uint8{
	{X: beatmap.Left, Y: beatmap.Top}:      42, // closed hat
	{X: beatmap.Left, Y: beatmap.Bottom}:   36, // kick
	{X: beatmap.Right, Y: beatmap.Top}:     51, // ride
	{X: beatmap.Right, Y: beatmap.Bottom}:  38, // snare
	{X: beatmap.Middle, Y: beatmap.Top}:    49, // crash
	{X: beatmap.Middle, Y: beatmap.Bottom}: 45, // low tom
}

var hitVelocity = map[beatmap.Hit]uint8{
	beatmap.HitTop:    127,
	beatmap.HitBottom: 90,
	beatmap.HitLeft:   100,
	beatmap.HitRight:  110,
}

// MIDIOptions configures the MIDI preview
type MIDIOptions struct {
	Name       string
	Tempo      float64 // BPM, 0 = 120
	NoteMillis int     // note length, 0 = 100
	Channel    uint8
}

// PreviewNote returns the MIDI key and velocity a mark is rendered with
func PreviewNote(m beatmap.HitEvent) (key, velocity uint8) {
	key, ok := placementNotes[m.Placement()]
	if !ok {
		key = 37 // side stick for unknown placements
	}
	velocity, ok = hitVelocity[m.Hit]
	if !ok {
		velocity = 64
	}
	return key, velocity
}

type timedMsg struct {
	tick uint32
	off  bool
	msg  gomidi.Message
}

// WriteMIDI renders marks as a single-track SMF so a tier can be auditioned
// in any DAW. Marks need not be sorted.
func WriteMIDI(w io.Writer, marks []beatmap.HitEvent, opts MIDIOptions) error {
	tempo := opts.Tempo
	if tempo <= 0 {
		tempo = 120
	}
	noteMillis := opts.NoteMillis
	if noteMillis <= 0 {
		noteMillis = 100
	}
	ticksPerSecond := float64(ticksPerQuarter) * tempo / 60
	toTicks := func(sec float64) uint32 {
		return uint32(math.Round(max(0, sec) * ticksPerSecond))
	}

	msgs := make([]timedMsg, 0, len(marks)*2)
	for _, m := range marks {
		key, vel := PreviewNote(m)
		start := toTicks(m.Time)
		end := toTicks(m.Time + float64(noteMillis)/1000)
		msgs = append(msgs,
			timedMsg{tick: start, msg: gomidi.NoteOn(opts.Channel, key, vel)},
			timedMsg{tick: end, off: true, msg: gomidi.NoteOff(opts.Channel, key)},
		)
	}
	// note-offs first so a repeated key at the same tick retriggers
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].off && !msgs[j].off
	})

	var tr smf.Track
	if opts.Name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	tr.Add(0, smf.MetaTempo(tempo))

	var last uint32
	for _, tm := range msgs {
		tr.Add(tm.tick-last, tm.msg)
		last = tm.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}
