package layout

import "github.com/justinpbarnett/nexusdesk/internal/geom"

// Region is the part of a window under the pointer.
type Region int

const (
	RegionNone Region = iota
	RegionTitle
	RegionMinimize
	RegionMaximize
	RegionClose
	RegionResize
	RegionBody
)

func (r Region) String() string {
	switch r {
	case RegionTitle:
		return "title"
	case RegionMinimize:
		return "minimize"
	case RegionMaximize:
		return "maximize"
	case RegionClose:
		return "close"
	case RegionResize:
		return "resize"
	case RegionBody:
		return "body"
	}
	return "none"
}

// Window chrome geometry. The three controls sit at the right end of the
// title bar, just inside the top-right corner: [_][□][×].
const (
	ControlWidth  = 3
	ControlsWidth = 3 * ControlWidth
)

// HitWindow classifies cell (cx, cy) against a window drawn in r. The resize
// handle is the bottom-right corner cell and only exists while the window is
// not maximized.
func HitWindow(r geom.Rect, maximized bool, cx, cy int) Region {
	if !r.Contains(cx, cy) {
		return RegionNone
	}
	if !maximized && cx == r.Right()-1 && cy == r.Bottom()-1 {
		return RegionResize
	}
	if cy != r.Y {
		return RegionBody
	}

	// Controls occupy [Right-1-ControlsWidth, Right-1).
	end := r.Right() - 1
	start := end - ControlsWidth
	if cx >= start && cx < end && start > r.X {
		switch (cx - start) / ControlWidth {
		case 0:
			return RegionMinimize
		case 1:
			return RegionMaximize
		default:
			return RegionClose
		}
	}
	return RegionTitle
}
