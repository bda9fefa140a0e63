package wm

import "github.com/justinpbarnett/nexusdesk/internal/geom"

// Default minimum window size in desktop units.
const (
	MinWidth  = 300
	MinHeight = 200
)

// Params is what a caller hands to OpenWindow. Title, Icon and Content are
// display payload owned by the caller; the manager stores them untouched.
type Params struct {
	Title   string
	Icon    string
	Content any
	X       int
	Y       int
	Width   int
	Height  int
}

// Window is one record in the window table.
type Window struct {
	ID      string
	Title   string
	Icon    string
	Content any

	// Floating geometry. Maximize never touches these.
	X      int
	Y      int
	Width  int
	Height int

	Minimized bool
	Maximized bool
	ZIndex    int
}

// Frame returns the stored floating geometry.
func (w Window) Frame() geom.Rect {
	return geom.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Rendered returns the geometry a window is drawn with inside area.
// Maximized windows fill the area; everything else uses the stored frame.
func Rendered(w Window, area geom.Rect) geom.Rect {
	if w.Maximized {
		return area
	}
	return w.Frame()
}
