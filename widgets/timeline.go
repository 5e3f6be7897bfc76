package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beatmapper/beatmap"
	"beatmapper/theme"
)

// timelineCell returns the column a time falls in
func timelineCell(t, duration float64, width int) int {
	if duration <= 0 || width <= 0 {
		return 0
	}
	col := int(t / duration * float64(width))
	return max(0, min(col, width-1))
}

// RenderTimeline draws the marks bar and the playback progress bar.
// Each cell shows the last mark that falls in it; cells holding more than
// one mark use the stacked symbol. The selected mark always wins its cell.
func RenderTimeline(th *theme.Theme, marks []beatmap.HitEvent, duration, position float64, selected, width int) string {
	if width <= 0 {
		return ""
	}

	counts := make([]int, width)
	cells := make([]int, width) // mark index per cell, -1 = empty
	for i := range cells {
		cells[i] = -1
	}
	for i, m := range marks {
		col := timelineCell(m.Time, duration, width)
		counts[col]++
		if cur := cells[col]; cur < 0 || cur != selected {
			cells[col] = i
		}
	}

	var line strings.Builder
	for col := 0; col < width; col++ {
		idx := cells[col]
		if idx < 0 {
			line.WriteString(" ")
			continue
		}
		sym := th.Symbols.Mark
		if counts[col] > 1 {
			sym = th.Symbols.Stacked
		}
		color := th.HitColor(marks[idx].Hit)
		if idx == selected {
			sym = th.Symbols.Selected
			color = th.Cursor()
		}
		line.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(sym)))
	}

	return line.String() + "\n" + RenderProgress(th, duration, position, width)
}

// RenderProgress draws the playhead over the track
func RenderProgress(th *theme.Theme, duration, position float64, width int) string {
	if width <= 0 {
		return ""
	}
	head := timelineCell(position, duration, width)
	played := lipgloss.NewStyle().Foreground(th.Accent())
	rest := lipgloss.NewStyle().Foreground(th.Muted())

	return played.Render(strings.Repeat(string(th.Symbols.Played), head)) +
		played.Render(string(th.Symbols.Playhead)) +
		rest.Render(strings.Repeat(string(th.Symbols.Unplayed), width-head-1))
}

// RenderLevelTabs shows the three levels with the active one highlighted
func RenderLevelTabs(th *theme.Theme, active beatmap.LevelName, enabled bool) string {
	on := lipgloss.NewStyle().Foreground(th.Success()).Bold(true)
	off := lipgloss.NewStyle().Foreground(th.FG())
	disabled := lipgloss.NewStyle().Foreground(th.Muted())

	var tabs []string
	for i, name := range beatmap.LevelNames() {
		label := fmt.Sprintf("[%d] %s", i+1, name.Title())
		switch {
		case !enabled:
			tabs = append(tabs, disabled.Render(label))
		case name == active:
			tabs = append(tabs, on.Render(label))
		default:
			tabs = append(tabs, off.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

// RenderMarkForm shows the selected mark and, if its form is open, the editable fields
func RenderMarkForm(th *theme.Theme, marks []beatmap.HitEvent, selected int) string {
	if selected < 0 || selected >= len(marks) {
		return lipgloss.NewStyle().Foreground(th.Muted()).Render("no marks")
	}
	m := marks[selected]
	arrow := lipgloss.NewStyle().Foreground(th.HitColor(m.Hit)).Render(string(th.HitArrow(m.Hit)))

	out := fmt.Sprintf("mark %d/%d  id %d  t=%.3fs  %-13s hit %s %s",
		selected+1, len(marks), m.ID, m.Time, m.Placement(), arrow, m.Hit)
	if m.FormVisible {
		out += "\n" + lipgloss.NewStyle().Foreground(th.FG()).Render(
			fmt.Sprintf("  [x] locationX: %s  [y] locationY: %s  [t] hit: %s", m.LocationX, m.LocationY, m.Hit))
	}
	return out
}
