package ui

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseClick
	MouseDoubleClick
	MouseEnter
	MouseLeave
	MouseDragStart
	MouseDragMotion
	MouseDragRelease
	MouseDragCancel
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseClick:
		return "click"
	case MouseDoubleClick:
		return "double-click"
	case MouseEnter:
		return "enter"
	case MouseLeave:
		return "leave"
	case MouseDragStart:
		return "drag-start"
	case MouseDragMotion:
		return "drag-motion"
	case MouseDragRelease:
		return "drag-release"
	case MouseDragCancel:
		return "drag-cancel"
	}
	return "unknown"
}

// MouseEvent is delivered to a single zone. X and Y are screen coordinates;
// RelX and RelY are relative to the receiving zone.
type MouseEvent struct {
	X, Y, RelX, RelY float64
	Action           MouseAction
	Zone             *Zone
	// Source is the zone being dragged, for drag events.
	Source *Zone
}

// Rect is an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
