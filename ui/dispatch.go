package ui

import (
	"math"
	"time"
)

const (
	DefaultDragSlop    = 4
	DefaultDoubleClick = 400 * time.Millisecond
)

// Dispatcher turns raw pointer samples into zone events. Zones later in the
// list are on top. It is driven from a single event loop.
type Dispatcher struct {
	DragSlop    float64
	DoubleClick time.Duration

	zones    []*Zone
	hovered  *Zone
	pressed  *Zone
	dragging bool

	pressX, pressY float64
	lastClickKey   string
	lastClickAt    time.Time
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{DragSlop: DefaultDragSlop, DoubleClick: DefaultDoubleClick}
}

// SetZones replaces the zone list. Hover and press state carry over to the
// zones with matching keys.
func (d *Dispatcher) SetZones(zones []*Zone) {
	d.zones = zones
	d.hovered = d.lookup(d.hovered)
	if d.hovered != nil {
		d.hovered.hovered = true
	}
	d.pressed = d.lookup(d.pressed)
	if d.pressed == nil {
		d.dragging = false
	}
}

func (d *Dispatcher) Zones() []*Zone { return d.zones }

// Dragging reports whether a drag gesture is in progress.
func (d *Dispatcher) Dragging() bool { return d.dragging }

// Pressed returns the zone the current gesture started on.
func (d *Dispatcher) Pressed() *Zone { return d.pressed }

func (d *Dispatcher) Move(x, y float64) {
	top := d.topmost(x, y)
	if !sameZone(top, d.hovered) {
		if d.hovered != nil {
			d.hovered.Update(MouseEvent{X: x, Y: y, Action: MouseLeave})
		}
		if top != nil {
			top.Update(MouseEvent{X: x, Y: y, Action: MouseEnter})
		}
		d.hovered = top
	}

	if d.pressed == nil {
		return
	}
	if !d.dragging {
		if !d.pressed.Draggable || math.Hypot(x-d.pressX, y-d.pressY) < d.DragSlop {
			return
		}
		d.dragging = true
		d.pressed.Update(MouseEvent{X: d.pressX, Y: d.pressY, Action: MouseDragStart, Source: d.pressed})
	}
	if top != nil {
		top.Update(MouseEvent{X: x, Y: y, Action: MouseDragMotion, Source: d.pressed})
	}
}

func (d *Dispatcher) Press(x, y float64) {
	top := d.topmost(x, y)
	if top == nil {
		return
	}
	d.pressed = top
	d.dragging = false
	d.pressX, d.pressY = x, y
	top.Update(MouseEvent{X: x, Y: y, Action: MousePress})
}

func (d *Dispatcher) Release(x, y float64, at time.Time) {
	src := d.pressed
	if src == nil {
		return
	}
	wasDragging := d.dragging
	d.pressed = nil
	d.dragging = false

	top := d.topmost(x, y)
	if wasDragging {
		if top != nil {
			top.Update(MouseEvent{X: x, Y: y, Action: MouseDragRelease, Source: src})
		}
		src.Update(MouseEvent{X: x, Y: y, Action: MouseRelease, Source: src})
		d.lastClickKey = ""
		return
	}

	src.Update(MouseEvent{X: x, Y: y, Action: MouseRelease})
	if !sameZone(top, src) {
		return
	}
	if d.lastClickKey == src.Key && at.Sub(d.lastClickAt) <= d.DoubleClick {
		d.lastClickKey = ""
		src.Update(MouseEvent{X: x, Y: y, Action: MouseDoubleClick})
		return
	}
	d.lastClickKey = src.Key
	d.lastClickAt = at
	src.Update(MouseEvent{X: x, Y: y, Action: MouseClick})
}

// Cancel aborts the current gesture, e.g. when the pointer leaves the window.
func (d *Dispatcher) Cancel() {
	src := d.pressed
	wasDragging := d.dragging
	d.pressed = nil
	d.dragging = false
	if src != nil && wasDragging {
		src.Update(MouseEvent{X: d.pressX, Y: d.pressY, Action: MouseDragCancel, Source: src})
	}
}

func (d *Dispatcher) topmost(x, y float64) *Zone {
	for i := len(d.zones) - 1; i >= 0; i-- {
		if d.zones[i].Contains(x, y) {
			return d.zones[i]
		}
	}
	return nil
}

func (d *Dispatcher) lookup(z *Zone) *Zone {
	if z == nil {
		return nil
	}
	for _, other := range d.zones {
		if other.Key == z.Key {
			return other
		}
	}
	return nil
}

func sameZone(a, b *Zone) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key == b.Key
}
