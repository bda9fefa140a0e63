package layout

import "github.com/justinpbarnett/nexusdesk/internal/geom"

// Scale converts between desktop units and terminal cells. One cell covers
// CellWidth x CellHeight units.
type Scale struct {
	CellWidth  int
	CellHeight int
}

// DefaultScale matches the default desktop config.
var DefaultScale = Scale{CellWidth: 10, CellHeight: 20}

func (s Scale) valid() Scale {
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		return DefaultScale
	}
	return s
}

// Pointer maps the cell under the mouse to desktop units. The far edge of the
// cell is used, so a press on the bottom-right cell of a window lands exactly
// on its frame edge and a resize that does not move keeps the size.
func (s Scale) Pointer(cx, cy int) (x, y int) {
	s = s.valid()
	return (cx + 1) * s.CellWidth, (cy + 1) * s.CellHeight
}

// ToCells converts a rectangle in desktop units to the cells it covers.
func (s Scale) ToCells(r geom.Rect) geom.Rect {
	s = s.valid()
	x0 := geom.FloorDiv(r.X, s.CellWidth)
	y0 := geom.FloorDiv(r.Y, s.CellHeight)
	x1 := geom.FloorDiv(r.X+r.Width, s.CellWidth)
	y1 := geom.FloorDiv(r.Y+r.Height, s.CellHeight)
	return geom.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ToUnits converts a cell rectangle to desktop units.
func (s Scale) ToUnits(r geom.Rect) geom.Rect {
	s = s.valid()
	return geom.Rect{
		X:      r.X * s.CellWidth,
		Y:      r.Y * s.CellHeight,
		Width:  r.Width * s.CellWidth,
		Height: r.Height * s.CellHeight,
	}
}

// SizeToCells converts a size in desktop units to whole cells, rounding a
// partial cell up.
func (s Scale) SizeToCells(sz geom.Size) geom.Size {
	s = s.valid()
	return geom.Size{
		Width:  -geom.FloorDiv(-sz.Width, s.CellWidth),
		Height: -geom.FloorDiv(-sz.Height, s.CellHeight),
	}
}

// FitSize rounds a size in desktop units up to whole cells, so anything that
// clamps by it agrees with what is drawn.
func (s Scale) FitSize(sz geom.Size) geom.Size {
	s = s.valid()
	c := s.SizeToCells(sz)
	return geom.Size{Width: c.Width * s.CellWidth, Height: c.Height * s.CellHeight}
}
