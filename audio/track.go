package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Track is what the editor needs from a loaded audio track
type Track interface {
	Duration() float64 // seconds
	Position() float64 // seconds from track start
}

// File is an opened audio file. It reports a fixed position of 0; wrap it in
// a Player for a moving playhead.
type File struct {
	Path       string
	SampleRate beep.SampleRate
	Channels   int
	Samples    int
}

// Open decodes the header of a .wav or .mp3 file to learn its duration
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// closes f too
	defer streamer.Close()

	return &File{
		Path:       path,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Samples:    streamer.Len(),
	}, nil
}

// Duration returns the track length in seconds
func (f *File) Duration() float64 {
	return f.Length().Seconds()
}

// Length returns the track length as a time.Duration
func (f *File) Length() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	return f.SampleRate.D(f.Samples)
}

func (f *File) Position() float64 { return 0 }

// Static is a Track with a known duration and no audio behind it
type Static float64

func (s Static) Duration() float64 { return float64(s) }
func (s Static) Position() float64 { return 0 }
