package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"beatmapper/audio"
	"beatmapper/beatmap"
	"beatmapper/config"
	"beatmapper/debug"
	"beatmapper/editor"
	"beatmapper/export"
	"beatmapper/theme"
	"beatmapper/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the editor, optionally on an audio track, and returns the
// process exit code.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return 1
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Debug log disabled: %v\n", err)
		}
		defer debug.Disable()
	}

	palette, err := theme.Load(cfg.PalettePath)
	if err != nil {
		fmt.Printf("Error loading palette: %v\n", err)
		return 1
	}
	th := theme.New(palette)

	cwd, _ := os.Getwd()
	var program *tea.Program

	session := editor.New(
		editor.WithSink(export.DirSink{Dir: cfg.ResolveExportDir(cwd)}),
		editor.WithLevelObserver(func(name beatmap.LevelName) {
			debug.Log("ui", "level %s", name)
			if program != nil {
				// observer runs inside Update; Send must not block it
				go program.Send(tui.LevelChangedMsg(name))
			}
		}),
	)

	// Optional audio track on the command line
	var player *audio.Player
	if len(args) > 0 {
		track, err := audio.Open(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		session.LoadTrack(track)
		player = audio.NewPlayer(track)
	}

	m := tui.NewModel(session, player, th)
	program = tea.NewProgram(m, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
