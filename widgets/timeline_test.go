package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatmapper/beatmap"
	"beatmapper/theme"
)

func testTheme() *theme.Theme {
	return theme.New(theme.DefaultPalette())
}

func TestTimelineCell(t *testing.T) {
	assert.Equal(t, 0, timelineCell(0, 10, 20))
	assert.Equal(t, 10, timelineCell(5, 10, 20))
	assert.Equal(t, 19, timelineCell(10, 10, 20), "end of track clamps to the last cell")
	assert.Equal(t, 0, timelineCell(3, 0, 20))
}

func TestRenderTimeline(t *testing.T) {
	th := testTheme()
	marks := []beatmap.HitEvent{
		{Time: 1, LocationX: beatmap.Left, LocationY: beatmap.Top, Hit: beatmap.HitTop},
		{Time: 1, LocationX: beatmap.Right, LocationY: beatmap.Top, Hit: beatmap.HitTop},
		{Time: 6, LocationX: beatmap.Left, LocationY: beatmap.Top, Hit: beatmap.HitLeft},
	}

	out := RenderTimeline(th, marks, 10, 5, 2, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 10, lipgloss.Width(lines[0]))
	assert.Equal(t, 10, lipgloss.Width(lines[1]))
	assert.Contains(t, lines[0], string(th.Symbols.Stacked))
	assert.Contains(t, lines[0], string(th.Symbols.Selected))
	assert.Contains(t, lines[1], string(th.Symbols.Playhead))
}

func TestRenderTimeline_ZeroWidth(t *testing.T) {
	assert.Empty(t, RenderTimeline(testTheme(), nil, 10, 0, 0, 0))
}

func TestRenderProgress_NonPositiveWidth(t *testing.T) {
	th := testTheme()
	assert.NotPanics(t, func() {
		assert.Empty(t, RenderProgress(th, 10, 5, 0))
		assert.Empty(t, RenderProgress(th, 10, 5, -3))
	})
	assert.Equal(t, 1, lipgloss.Width(RenderProgress(th, 10, 5, 1)))
}

func TestRenderLevelTabs(t *testing.T) {
	out := RenderLevelTabs(testTheme(), beatmap.Level2, true)
	assert.Contains(t, out, "[1] Level 1")
	assert.Contains(t, out, "[2] Level 2")
	assert.Contains(t, out, "[3] Level 3")
}

func TestRenderMarkForm(t *testing.T) {
	th := testTheme()
	marks := []beatmap.HitEvent{
		{ID: 7, Time: 2.5, LocationX: beatmap.Middle, LocationY: beatmap.Bottom, Hit: beatmap.HitRight, FormVisible: true},
	}
	out := RenderMarkForm(th, marks, 0)
	assert.Contains(t, out, "mark 1/1")
	assert.Contains(t, out, "t=2.500s")
	assert.Contains(t, out, "Middle-Bottom")
	assert.Contains(t, out, "[x] locationX: Middle")
	assert.Contains(t, out, "[t] hit: Right")

	assert.Contains(t, RenderMarkForm(th, nil, 0), "no marks")
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{
		{Title: "Levels", Keys: []KeyBinding{{Key: "g", Desc: "generate"}}},
	})
	assert.Equal(t, "Levels\n  g            generate", out)
}
