package hand

// Rect is the vertical extent of a hovered card on screen. It is read fresh
// for every hover event.
type Rect struct {
	Top, Bottom float64
}

func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Resolve decides whether dragging the card at dragged over the card at
// hovered, with the drag source at pointerY, warrants a swap.
//
// The threshold is half the hovered card's height measured from its top
// edge. Dragging downward swaps only once the pointer is past it; dragging
// upward only once it is above it. A card never swaps with itself.
func Resolve(dragged, hovered int, r Rect, pointerY float64) bool {
	if dragged == hovered {
		return false
	}
	mid := r.Height() / 2
	rel := pointerY - r.Top
	if dragged < hovered && rel < mid {
		return false
	}
	if dragged > hovered && rel > mid {
		return false
	}
	return true
}

// Decision is the outcome of one hover event. The zero value means no swap.
type Decision struct {
	Swap     bool
	From, To int
}

// Step runs one hover event for session s against the owning sequence m of
// size n. When a swap is warranted it calls m.MoveCard(from, to) and then
// s.UpdateIndex(to) before returning, so a repeated event for the same
// pointer crossing sees the card at its new index and cannot fire again.
//
// A nil session or an index outside [0, n) yields no swap.
func Step(s *Session, m Mover, n int, hovered int, r Rect, pointerY float64) Decision {
	if s == nil {
		return Decision{}
	}
	dragged := s.Index()
	if dragged < 0 || dragged >= n || hovered < 0 || hovered >= n {
		return Decision{}
	}
	if !Resolve(dragged, hovered, r, pointerY) {
		return Decision{}
	}
	m.MoveCard(dragged, hovered)
	s.UpdateIndex(hovered)
	return Decision{Swap: true, From: dragged, To: hovered}
}
