package ui

import (
	"time"

	"github.com/SvenDH/go-card-hand/hand"
)

// Geometry places the hand on screen. Slots stack vertically following
// Layout; Left and Width give their horizontal extent and ToggleWidth the
// width of the toggle control at the left edge of each slot.
type Geometry struct {
	hand.Layout
	Left, Width, ToggleWidth float64
}

// Slot is one rendered card.
type Slot struct {
	Card     hand.Card
	Bounds   Rect
	Toggle   Rect
	Control  hand.Control
	Classes  []string
	Dragging bool
	// Hovered marks the slot under the pointer. The dragged slot is never
	// hovered.
	Hovered bool
}

// HandView binds a hand controller to pointer input. Hosts feed it pointer
// samples and draw its slots.
type HandView struct {
	// TrackCursor feeds the cursor position to the resolver instead of the
	// dragged card's top edge.
	TrackCursor bool

	ctrl *hand.Controller
	pres hand.Presentation
	geo  Geometry
	disp *Dispatcher

	slots []Slot
	// grab is the distance from the dragged card's top to the press point.
	grab               float64
	pointerX, pointerY float64
	hasPointer         bool
}

func NewHandView(ctrl *hand.Controller, pres hand.Presentation, geo Geometry) *HandView {
	v := &HandView{ctrl: ctrl, pres: pres, geo: geo, disp: NewDispatcher()}
	v.Sync()
	return v
}

func (v *HandView) Controller() *hand.Controller { return v.ctrl }

func (v *HandView) Geometry() Geometry { return v.geo }

// Slots returns the rendered cards top to bottom.
func (v *HandView) Slots() []Slot { return v.slots }

// DragTop returns where the dragged card's top edge follows the pointer.
func (v *HandView) DragTop() (float64, bool) {
	if v.ctrl.Session() == nil {
		return 0, false
	}
	return v.pointerY - v.grab, true
}

func (v *HandView) Press(x, y float64) {
	v.point(x, y)
	v.disp.Press(x, y)
	v.Sync()
}

func (v *HandView) Move(x, y float64) {
	v.point(x, y)
	v.disp.Move(x, y)
	v.Sync()
}

func (v *HandView) Release(x, y float64, at time.Time) {
	v.point(x, y)
	v.disp.Release(x, y, at)
	if v.ctrl.Session() != nil {
		v.ctrl.EndDrag()
	}
	v.Sync()
}

func (v *HandView) Cancel() {
	v.disp.Cancel()
	v.ctrl.EndDrag()
	v.Sync()
}

// Sync rebuilds slots and zones from the owner's current order.
func (v *HandView) Sync() {
	owner := v.ctrl.Owner()
	session := v.ctrl.Session()

	slots := make([]Slot, 0, owner.Len())
	zones := make([]*Zone, 0, 2*owner.Len())
	for i := 0; i < owner.Len(); i++ {
		card, ok := owner.Card(i)
		if !ok || !v.pres.Rendered(card) {
			continue
		}
		dragging := session != nil && session.CardID == card.ID
		r := v.geo.Rect(len(slots))
		bounds := Rect{X: v.geo.Left, Y: r.Top, W: v.geo.Width, H: r.Height()}
		toggle := Rect{X: v.geo.Left, Y: r.Top, W: v.geo.ToggleWidth, H: r.Height()}
		slots = append(slots, Slot{
			Card:     card,
			Bounds:   bounds,
			Toggle:   toggle,
			Control:  v.pres.Control(),
			Classes:  hand.Classes(card, dragging),
			Dragging: dragging,
		})
		zones = append(zones, v.cardZone(card.ID, i, r, bounds), v.toggleZone(card.ID, i, toggle))
	}
	if i := v.hovered(slots); i >= 0 {
		slots[i].Hovered = true
		slots[i].Classes = append(slots[i].Classes, "card--hover")
	}
	v.slots = slots
	v.disp.SetZones(zones)
}

func (v *HandView) point(x, y float64) {
	v.pointerX, v.pointerY = x, y
	v.hasPointer = true
}

// hovered returns the index of the slot under the pointer, or -1.
func (v *HandView) hovered(slots []Slot) int {
	if !v.hasPointer {
		return -1
	}
	i := v.geo.HitTest(v.pointerY, len(slots))
	if i < 0 || slots[i].Dragging || !slots[i].Bounds.Contains(v.pointerX, v.pointerY) {
		return -1
	}
	return i
}

// sourceOffset is subtracted from the cursor to get the drag source top fed
// to the resolver. Hover events only reach the zone under the cursor, so the
// offset is capped at a quarter of the hovered card, and at Height/2-1 for
// short cards, leaving a band at the bottom of every neighbour where a card
// grabbed low crosses its midpoint.
func (v *HandView) sourceOffset(r hand.Rect) float64 {
	if v.TrackCursor {
		return 0
	}
	h := r.Height()
	return max(min(v.grab, h/4, h/2-1), 0)
}

func (v *HandView) cardZone(id hand.CardID, index int, r hand.Rect, bounds Rect) *Zone {
	return &Zone{
		Key:       "card:" + string(id),
		Rect:      bounds,
		Draggable: true,
		DragStart: func(ev MouseEvent) {
			if _, err := v.ctrl.BeginDrag(index); err != nil {
				return
			}
			v.grab = ev.RelY
		},
		DragOver: func(ev MouseEvent) {
			v.ctrl.Hover(index, r, ev.Y-v.sourceOffset(r))
		},
		Release: func(ev MouseEvent) {
			v.ctrl.EndDrag()
		},
		Cancel: func(ev MouseEvent) {
			v.ctrl.EndDrag()
		},
		DoubleClick: func(ev MouseEvent) {
			card, ok := v.ctrl.Owner().Card(index)
			if ok && hand.CanToggleStatus(card, v.disp.Dragging()) {
				v.ctrl.ToggleHandStatus(index)
			}
		},
	}
}

func (v *HandView) toggleZone(id hand.CardID, index int, bounds Rect) *Zone {
	return &Zone{
		Key:  "toggle:" + string(id),
		Rect: bounds,
		Click: func(ev MouseEvent) {
			if v.pres.Control() == hand.ControlCheckbox {
				v.ctrl.ToggleCard(index)
			}
		},
	}
}
