package theme

import (
	"github.com/charmbracelet/lipgloss"

	"beatmapper/beatmap"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Timeline
	Mark     rune // ● a mark
	Selected rune // ◉ the mark under the cursor
	Stacked  rune // ◆ several marks in one cell
	Played   rune // ━ played part of the track
	Unplayed rune // ─ rest of the track
	Playhead rune // ▶

	// Hit direction arrows
	HitTop    rune
	HitBottom rune
	HitLeft   rune
	HitRight  rune
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Mark:     '●',
			Selected: '◉',
			Stacked:  '◆',
			Played:   '━',
			Unplayed: '─',
			Playhead: '▶',

			HitTop:    '↑',
			HitBottom: '↓',
			HitLeft:   '←',
			HitRight:  '→',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep purple
	RoleMuted   = 0.2 // purple-magenta
	RoleFG      = 0.4 // pink-purple (readable)
	RoleAccent  = 0.5 // vivid magenta
	RoleCursor  = 0.6 // rose pink
	RoleActive  = 0.7 // soft red
	RoleWarning = 0.8 // orange
	RoleSuccess = 1.0 // bright yellow
)

// Hit directions spread across the upper half of the palette
var hitRoles = map[beatmap.Hit]float64{
	beatmap.HitTop:    0.45,
	beatmap.HitBottom: 0.6,
	beatmap.HitLeft:   0.75,
	beatmap.HitRight:  0.9,
}

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// HitRGB returns the raw color of a hit direction (for image export)
func (t *Theme) HitRGB(h beatmap.Hit) RGB {
	return t.Palette.Lookup(hitRoles[h])
}

// HitColor returns the lipgloss color of a hit direction
func (t *Theme) HitColor(h beatmap.Hit) lipgloss.Color {
	return rgbToLipgloss(t.HitRGB(h))
}

// HitArrow returns the arrow symbol of a hit direction
func (t *Theme) HitArrow(h beatmap.Hit) rune {
	switch h {
	case beatmap.HitTop:
		return t.Symbols.HitTop
	case beatmap.HitBottom:
		return t.Symbols.HitBottom
	case beatmap.HitLeft:
		return t.Symbols.HitLeft
	case beatmap.HitRight:
		return t.Symbols.HitRight
	}
	return '?'
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
