package beatmap

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLevel     = errors.New("unknown level")
	ErrInvalidPlacement = errors.New("invalid placement")
)

// LocationX is the horizontal placement of a mark
type LocationX string

const (
	Left   LocationX = "Left"
	Right  LocationX = "Right"
	Middle LocationX = "Middle"
)

// LocationY is the vertical placement of a mark
type LocationY string

const (
	Top    LocationY = "Top"
	Bottom LocationY = "Bottom"
)

// Hit is the gesture direction attached to a mark, independent of its location
type Hit string

const (
	HitTop    Hit = "Top"
	HitBottom Hit = "Bottom"
	HitLeft   Hit = "Left"
	HitRight  Hit = "Right"
)

// Draw order matters: the generators index these with Intn(len).
var (
	locationsX = []LocationX{Left, Right, Middle}
	locationsY = []LocationY{Top, Bottom}
	hits       = []Hit{HitTop, HitBottom, HitLeft, HitRight}
)

// Placement is a (locationX, locationY) pair
type Placement struct {
	X LocationX
	Y LocationY
}

func (p Placement) String() string {
	return string(p.X) + "-" + string(p.Y)
}

// Placements returns all 6 placements in draw order
func Placements() []Placement {
	out := make([]Placement, 0, len(locationsX)*len(locationsY))
	for _, x := range locationsX {
		for _, y := range locationsY {
			out = append(out, Placement{X: x, Y: y})
		}
	}
	return out
}

// Hits returns all hit directions in draw order
func Hits() []Hit {
	return append([]Hit(nil), hits...)
}

// HitEvent is one timed, positioned, directional mark in a beat map.
// FormVisible is editor-only state and never exported.
type HitEvent struct {
	ID          int       `json:"id"`
	Time        float64   `json:"time"`
	LocationX   LocationX `json:"locationX"`
	LocationY   LocationY `json:"locationY"`
	Hit         Hit       `json:"hit"`
	FormVisible bool      `json:"formVisible"`
}

// Placement returns the event's (locationX, locationY) pair
func (e HitEvent) Placement() Placement {
	return Placement{X: e.LocationX, Y: e.LocationY}
}

// ParseLocationX validates a horizontal placement name
func ParseLocationX(s string) (LocationX, error) {
	for _, x := range locationsX {
		if string(x) == s {
			return x, nil
		}
	}
	return "", fmt.Errorf("%w: locationX %q", ErrInvalidPlacement, s)
}

// ParseLocationY validates a vertical placement name
func ParseLocationY(s string) (LocationY, error) {
	for _, y := range locationsY {
		if string(y) == s {
			return y, nil
		}
	}
	return "", fmt.Errorf("%w: locationY %q", ErrInvalidPlacement, s)
}

// ParseHit validates a hit direction name
func ParseHit(s string) (Hit, error) {
	for _, h := range hits {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: hit %q", ErrInvalidPlacement, s)
}

// next returns the value after v in values, wrapping around. Unknown
// values map to the first entry.
func next[T comparable](values []T, v T) T {
	for i, x := range values {
		if x == v {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// Next steps through Left, Right, Middle
func (x LocationX) Next() LocationX { return next(locationsX, x) }

// Next steps through Top, Bottom
func (y LocationY) Next() LocationY { return next(locationsY, y) }

// Next steps through Top, Bottom, Left, Right
func (h Hit) Next() Hit { return next(hits, h) }
