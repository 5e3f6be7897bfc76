package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"beatmapper/audio"
	"beatmapper/beatmap"
	"beatmapper/config"
	"beatmapper/debug"
	"beatmapper/editor"
	"beatmapper/export"
	"beatmapper/theme"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code:
// 0 on success, 1 on failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.Debug {
		if err := debug.Enable(); err == nil {
			defer debug.Disable()
		}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		err = info(stdout, rest)
	case "generate":
		err = generate(stdout, cfg, rest)
	case "list":
		err = list(stdout, cfg, rest)
	case "midi":
		err = renderMIDI(stdout, cfg, rest)
	case "png":
		err = renderPNG(stdout, cfg, rest)
	case "config":
		err = writeConfig(stdout, cfg)
	default:
		err = errUsage
	}

	switch {
	case errors.Is(err, errUsage):
		usage(stderr)
		return 2
	case err != nil:
		debug.Log("beatgen", "%s failed: %v", cmd, err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "beatgen - procedural beat map generator")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info <audio>                     - Show track duration and tier sizes")
	fmt.Fprintln(w, "  generate <audio> [dir]           - Write level1.json..level3.json")
	fmt.Fprintln(w, "  list [dir]                       - List exported levels")
	fmt.Fprintln(w, "  midi <audio> <level> <out.mid>   - Generate and write a MIDI preview of a level")
	fmt.Fprintln(w, "  png <audio> <level> <out.png>    - Generate and draw a level timeline")
	fmt.Fprintln(w, "  config                           - Write the current config to disk")
}

// load opens the track and generates a session around it
func load(path string, sink export.Sink) (*editor.Session, *audio.File, error) {
	track, err := audio.Open(path)
	if err != nil {
		return nil, nil, err
	}
	s := editor.New(editor.WithSink(sink))
	s.LoadTrack(track)
	if err := s.Generate(); err != nil {
		return nil, nil, err
	}
	return s, track, nil
}

func info(w io.Writer, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	track, err := audio.Open(args[0])
	if err != nil {
		return err
	}
	d := track.Duration()
	fmt.Fprintf(w, "%s: %.3fs, %d Hz, %d channels\n", filepath.Base(track.Path), d, track.SampleRate, track.Channels)
	for _, tier := range beatmap.DefaultTiers {
		base := beatmap.SampleCount(d, tier.Density)
		fmt.Fprintf(w, "  %s: %d base marks, up to %d extra\n", tier.Name, base, beatmap.AugmentCount(base, tier.Fraction))
	}
	return nil
}

// exportDir is the optional dir argument, or the configured export dir
func exportDir(cfg *config.Config, args []string, at int) string {
	if len(args) > at {
		return args[at]
	}
	cwd, _ := os.Getwd()
	return cfg.ResolveExportDir(cwd)
}

func generate(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	s, _, err := load(args[0], export.DirSink{Dir: exportDir(cfg, args, 1)})
	if err != nil {
		return err
	}
	for _, name := range beatmap.LevelNames() {
		path, err := s.Download(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, path)
	}
	return nil
}

func list(w io.Writer, cfg *config.Config, args []string) error {
	sink := export.DirSink{Dir: exportDir(cfg, args, 0)}
	names, err := sink.ListExports()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "no exports in %s\n", sink.Dir)
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, filepath.Join(sink.Dir, name))
	}
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	if err := cfg.Save(); err != nil {
		return err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, path)
	return nil
}

// levelArgs parses <audio> <level> <out> and generates the level
func levelArgs(args []string) ([]beatmap.HitEvent, *audio.File, beatmap.LevelName, string, error) {
	if len(args) < 3 {
		return nil, nil, "", "", errUsage
	}
	name, err := beatmap.ParseLevelName(args[1])
	if err != nil {
		return nil, nil, "", "", err
	}
	s, track, err := load(args[0], nil)
	if err != nil {
		return nil, nil, "", "", err
	}
	levels, _ := s.Levels()
	marks, _ := levels.Get(name)
	return marks, track, name, args[2], nil
}

func renderMIDI(w io.Writer, cfg *config.Config, args []string) error {
	marks, _, name, out, err := levelArgs(args)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := export.MIDIOptions{
		Name:       string(name),
		Tempo:      cfg.Preview.Tempo,
		NoteMillis: cfg.Preview.NoteMillis,
		Channel:    export.DrumChannel,
	}
	if cfg.Preview.Channel > 0 {
		opts.Channel = cfg.Preview.Channel - 1
	}
	if err := export.WriteMIDI(f, marks, opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d marks\n", out, len(marks))
	return nil
}

func renderPNG(w io.Writer, cfg *config.Config, args []string) error {
	marks, track, name, out, err := levelArgs(args)
	if err != nil {
		return err
	}

	palette, err := theme.Load(cfg.PalettePath)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := export.PNGOptions{Theme: theme.New(palette), Title: name.Title()}
	if err := export.WritePNG(f, marks, track.Duration(), opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d marks\n", out, len(marks))
	return nil
}
