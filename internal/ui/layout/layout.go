package layout

import "github.com/justinpbarnett/nexusdesk/internal/geom"

// Layout holds the cell geometry of the screen: the desktop area and the
// taskbar row below it.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Desktop is the area windows and icons live in, in cells.
	Desktop geom.Rect

	// TaskbarY is the row the taskbar is drawn on.
	TaskbarY     int
	TaskbarWidth int
}

const (
	MinWidth  = 40
	MinHeight = 12

	TaskbarHeight = 1
)

// Calculate splits the terminal into desktop and taskbar.
// Returns Layout with TooSmall=true if under minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	l.Desktop = geom.Rect{Width: termWidth, Height: termHeight - TaskbarHeight}
	l.TaskbarY = termHeight - TaskbarHeight
	l.TaskbarWidth = termWidth
	return l
}
