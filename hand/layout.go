package hand

import "math"

// Layout stacks card slots vertically from Top, each Height tall with Gap
// between consecutive slots.
type Layout struct {
	Top, Height, Gap float64
}

// Rect returns the rectangle of slot i.
func (l Layout) Rect(slot int) Rect {
	top := l.Top + float64(slot)*(l.Height+l.Gap)
	return Rect{Top: top, Bottom: top + l.Height}
}

// HitTest returns the slot under y among n slots, or -1 when y falls outside
// every slot or inside a gap.
func (l Layout) HitTest(y float64, n int) int {
	if l.Height <= 0 || y < l.Top {
		return -1
	}
	slot := int(math.Floor((y - l.Top) / (l.Height + l.Gap)))
	if slot >= n {
		return -1
	}
	if y >= l.Rect(slot).Bottom {
		return -1
	}
	return slot
}
