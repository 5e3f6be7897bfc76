package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"beatmapper/beatmap"
	"beatmapper/theme"
)

// PNGOptions configures the timeline image
type PNGOptions struct {
	Width, Height int
	Theme         *theme.Theme // nil = default palette
	Title         string
}

const (
	labelW  = 110.0
	marginY = 24.0
	dotR    = 3.0
)

// RenderTimeline draws marks on six placement lanes over the track duration
func RenderTimeline(marks []beatmap.HitEvent, duration float64, opts PNGOptions) (image.Image, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 1600
	}
	if h <= 0 {
		h = 320
	}
	th := opts.Theme
	if th == nil {
		th = theme.New(theme.DefaultPalette())
	}

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(th.Palette.Lookup(theme.RoleBG).Float())
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 12}))

	placements := beatmap.Placements()
	laneH := (float64(h) - 2*marginY) / float64(len(placements))
	laneY := make(map[beatmap.Placement]float64, len(placements))

	// Lanes
	for i, p := range placements {
		y := marginY + laneH*(float64(i)+0.5)
		laneY[p] = y

		dc.SetRGB(th.Palette.Lookup(theme.RoleMuted).Float())
		dc.SetLineWidth(1)
		dc.DrawLine(labelW, y, float64(w)-10, y)
		dc.Stroke()

		dc.SetRGB(th.Palette.Lookup(theme.RoleFG).Float())
		dc.DrawStringAnchored(p.String(), 8, y, 0, 0.5)
	}

	if opts.Title != "" {
		dc.SetRGB(th.Palette.Lookup(theme.RoleSuccess).Float())
		dc.DrawStringAnchored(opts.Title, 8, marginY/2, 0, 0.5)
	}
	dc.SetRGB(th.Palette.Lookup(theme.RoleFG).Float())
	dc.DrawStringAnchored(fmt.Sprintf("%.1fs  %d marks", duration, len(marks)), float64(w)-10, marginY/2, 1, 0.5)

	// Marks
	span := float64(w) - labelW - 20
	for _, m := range marks {
		y, ok := laneY[m.Placement()]
		if !ok {
			continue
		}
		x := labelW
		if duration > 0 {
			x += m.Time / duration * span
		}
		dc.SetRGB(th.HitRGB(m.Hit).Float())
		dc.DrawCircle(x, y, dotR)
		dc.Fill()
	}

	return dc.Image(), nil
}

// WritePNG renders the timeline and encodes it as PNG
func WritePNG(w io.Writer, marks []beatmap.HitEvent, duration float64, opts PNGOptions) error {
	img, err := RenderTimeline(marks, duration, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}
