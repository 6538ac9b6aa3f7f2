package ui

// Zone is an interactive region. Callbacks left nil ignore their event.
type Zone struct {
	// Key identifies the zone across rebuilds.
	Key string
	Rect
	Draggable bool

	Press       func(ev MouseEvent)
	Release     func(ev MouseEvent)
	Click       func(ev MouseEvent)
	DoubleClick func(ev MouseEvent)
	Enter       func(ev MouseEvent)
	Leave       func(ev MouseEvent)
	// DragStart is sent to the dragged zone once the pointer leaves the
	// drag slop. The event carries the press position.
	DragStart func(ev MouseEvent)
	// DragOver is sent to the zone under the pointer on every drag motion.
	DragOver func(ev MouseEvent)
	// Drop is sent to the zone under the pointer when a drag is released.
	Drop   func(ev MouseEvent)
	Cancel func(ev MouseEvent)

	hovered bool
}

func (z *Zone) Hovered() bool { return z.hovered }

func (z *Zone) Update(ev MouseEvent) {
	ev.Zone = z
	ev.RelX = ev.X - z.X
	ev.RelY = ev.Y - z.Y

	var fn func(MouseEvent)
	switch ev.Action {
	case MousePress:
		fn = z.Press
	case MouseRelease:
		fn = z.Release
	case MouseClick:
		fn = z.Click
	case MouseDoubleClick:
		fn = z.DoubleClick
	case MouseEnter:
		z.hovered = true
		fn = z.Enter
	case MouseLeave:
		z.hovered = false
		fn = z.Leave
	case MouseDragStart:
		fn = z.DragStart
	case MouseDragMotion:
		fn = z.DragOver
	case MouseDragRelease:
		fn = z.Drop
	case MouseDragCancel:
		fn = z.Cancel
	}
	if fn != nil {
		fn(ev)
	}
}
