package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"beatmapper/audio"
	"beatmapper/beatmap"
	"beatmapper/debug"
	"beatmapper/editor"
	"beatmapper/theme"
	"beatmapper/widgets"
)

// Progress refresh rate while playing
const refreshEvery = time.Second

// Ticks between playback position log lines
const playbackLogEvery = 10

type Model struct {
	Session  *editor.Session
	Player   *audio.Player // nil until a track is loaded
	Theme    *theme.Theme
	Title    string // track name for the header
	width    int
	status   string
	err      error
	quitting bool
}

type TickMsg time.Time

// LevelChangedMsg is sent when the session switches levels
type LevelChangedMsg beatmap.LevelName

func NewModel(session *editor.Session, player *audio.Player, th *theme.Theme) Model {
	title := "(no track)"
	if f, ok := session.Track().(*audio.File); ok {
		title = filepath.Base(f.Path)
	}
	return Model{
		Session: session,
		Player:  player,
		Theme:   th,
		Title:   title,
		width:   80,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case TickMsg:
		if m.Player != nil {
			pos := m.Player.Position() // settles end-of-track
			if m.Player.Playing() {
				debug.LogEvery(playbackLogEvery, "playback", "at %.1fs of %.1fs", pos, m.Player.Duration())
			}
		}
		return m, tick()

	case LevelChangedMsg:
		m.status = "showing " + beatmap.LevelName(msg).Title()
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.err = nil

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		if m.Player != nil {
			m.Player.Pause()
		}
		return m, tea.Quit

	case "g":
		if !m.Session.CanGenerate() {
			m.status = "load an audio track to generate"
			return m, nil
		}
		if m.err = m.Session.Generate(); m.err == nil {
			m.status = "generated 3 levels"
		}

	case "1", "2", "3":
		name := beatmap.LevelNames()[int(key[0]-'1')]
		if m.err = m.Session.SelectLevel(name); m.err == nil {
			m.status = "showing " + name.Title()
		}

	case " ", "p":
		if m.Player == nil {
			m.status = "no track loaded"
			return m, nil
		}
		if m.Player.Toggle() {
			m.status = "playing"
		} else {
			m.status = "paused"
		}

	case "h", "left":
		m.Session.PrevMark()

	case "l", "right":
		m.Session.NextMark()

	case "f":
		m.err = m.Session.ToggleForm(m.Session.SelectedMark())

	case "x", "y", "t":
		m.editSelected(key)

	case "e":
		var mark beatmap.HitEvent
		if mark, m.err = m.Session.AddExtraMark(); m.err == nil {
			m.status = fmt.Sprintf("extra mark at %.3fs", mark.Time)
		}

	case "d":
		var path string
		if path, m.err = m.Session.DownloadActive(); m.err == nil {
			m.status = "saved " + path
		}
	}

	return m, nil
}

// editSelected steps one field of the selected mark. The mark's form must
// be open.
func (m *Model) editSelected(key string) {
	sel := m.Session.SelectedMark()
	marks := m.Session.Marks()
	if sel < 0 || sel >= len(marks) {
		m.err = editor.ErrNoMarks
		return
	}
	mark := marks[sel]
	if !mark.FormVisible {
		m.status = "press f to open the mark form"
		return
	}

	x, y, hit := mark.LocationX, mark.LocationY, mark.Hit
	switch key {
	case "x":
		x = x.Next()
	case "y":
		y = y.Next()
	case "t":
		hit = hit.Next()
	}
	if m.err = m.Session.EditMark(sel, x, y, hit); m.err == nil {
		m.status = fmt.Sprintf("mark %d: %s-%s hit %s", sel+1, x, y, hit)
	}
}

// Status returns the last status line and error
func (m Model) Status() (string, error) {
	return m.status, m.err
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	duration, position := 0.0, 0.0
	playState := "STOP"
	if m.Player != nil {
		duration = m.Player.Duration()
		position = m.Player.Position()
		if m.Player.Playing() {
			playState = "PLAY"
		}
	}

	header := headerStyle.Render(fmt.Sprintf("beatmapper  %s  %s  %6.1f/%.1fs",
		m.Title, playState, position, duration))

	active, generated := m.Session.ActiveLevel()
	marks := m.Session.Marks()
	barWidth := max(10, m.width-4)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderLevelTabs(m.Theme, active, generated))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderTimeline(m.Theme, marks, duration, position, m.Session.SelectedMark(), barWidth))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderMarkForm(m.Theme, marks, m.Session.SelectedMark()))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "g", Desc: "generate levels"},
			{Key: "1 / 2 / 3", Desc: "show level"},
			{Key: "space", Desc: "play / pause"},
			{Key: "h / l", Desc: "previous / next mark"},
			{Key: "e", Desc: "add extra mark at this time"},
			{Key: "f", Desc: "toggle mark form"},
			{Key: "x / y / t", Desc: "step locationX / locationY / hit (form open)"},
			{Key: "d", Desc: "download active level"},
		}},
	}))
	out.WriteString("\n\n")

	if m.err != nil {
		out.WriteString(errStyle.Render("error: " + m.err.Error()))
	} else {
		out.WriteString(dimStyle.Render(m.status))
	}
	out.WriteString("\n")
	out.WriteString(dimStyle.Render("q:quit"))

	return out.String()
}
