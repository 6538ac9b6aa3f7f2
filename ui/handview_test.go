package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-hand/hand"
)

var testGeometry = Geometry{
	Layout:      hand.Layout{Top: 0, Height: 100},
	Left:        0,
	Width:       200,
	ToggleWidth: 20,
}

func newTestView(pres hand.Presentation, cards ...hand.Card) (*HandView, *hand.Hand) {
	h := hand.New(cards...)
	return NewHandView(hand.NewController(h), pres, testGeometry), h
}

func visible(ids ...hand.CardID) []hand.Card {
	cards := make([]hand.Card, len(ids))
	for i, id := range ids {
		cards[i] = hand.Card{ID: id, Character: "spellweaver", Visible: true, Status: hand.InHand}
	}
	return cards
}

func TestHandViewSlots(t *testing.T) {
	v, _ := newTestView(hand.Presentation{}, visible("A", "B")...)
	slots := v.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, Rect{X: 0, Y: 100, W: 200, H: 100}, slots[1].Bounds)
	assert.Equal(t, Rect{X: 0, Y: 100, W: 20, H: 100}, slots[1].Toggle)
	assert.Equal(t, hand.ControlMarker, slots[0].Control)
	assert.Equal(t, []string{"card"}, slots[0].Classes)
}

func TestHandViewDragReorders(t *testing.T) {
	v, h := newTestView(hand.Presentation{}, visible("A", "B", "C")...)

	// Grab A 30px below its top edge.
	v.Press(100, 30)
	v.Move(100, 60)
	require.NotNil(t, v.Controller().Session())
	assert.True(t, v.Slots()[0].Dragging)
	assert.Contains(t, v.Slots()[0].Classes, "card--dragged")
	top, ok := v.DragTop()
	require.True(t, ok)
	assert.Equal(t, 30.0, top)

	// Source top at 125: 25px into B, not past its midpoint.
	v.Move(100, 150)
	assert.Equal(t, []hand.CardID{"A", "B", "C"}, h.Order())

	// Source top at 165: past B's midpoint.
	v.Move(100, 190)
	assert.Equal(t, []hand.CardID{"B", "A", "C"}, h.Order())
	assert.Equal(t, 1, v.Controller().Session().Index())
	assert.Equal(t, hand.CardID("A"), v.Slots()[1].Card.ID)
	assert.True(t, v.Slots()[1].Dragging)

	v.Move(100, 195)
	v.Move(100, 199)
	assert.Equal(t, []hand.CardID{"B", "A", "C"}, h.Order())

	v.Release(100, 199, time.Now())
	assert.Nil(t, v.Controller().Session())
	assert.False(t, v.Slots()[1].Dragging)
	_, ok = v.DragTop()
	assert.False(t, ok)
	assert.Equal(t, []hand.CardID{"B", "A", "C"}, h.Order())
}

func TestHandViewDragUp(t *testing.T) {
	v, h := newTestView(hand.Presentation{}, visible("A", "B", "C")...)

	v.Press(100, 210)
	v.Move(100, 180)
	// Source top at 170 is in B's lower half.
	assert.Equal(t, []hand.CardID{"A", "B", "C"}, h.Order())
	v.Move(100, 150)
	assert.Equal(t, []hand.CardID{"A", "C", "B"}, h.Order())
	v.Move(100, 40)
	assert.Equal(t, []hand.CardID{"C", "A", "B"}, h.Order())
	v.Release(100, 40, time.Now())
}

func TestHandViewCancel(t *testing.T) {
	v, h := newTestView(hand.Presentation{}, visible("A", "B")...)
	v.Press(100, 10)
	v.Move(100, 170)
	assert.Equal(t, []hand.CardID{"B", "A"}, h.Order())

	v.Cancel()
	assert.Nil(t, v.Controller().Session())
	v.Move(100, 20)
	assert.Equal(t, []hand.CardID{"B", "A"}, h.Order())
}

func TestHandViewDoubleClickTogglesStatus(t *testing.T) {
	cards := visible("A", "B")
	cards[1].Status = hand.NotInHand
	v, h := newTestView(hand.Presentation{}, cards...)
	t0 := time.Unix(0, 0)

	for _, y := range []float64{50, 150} {
		v.Press(100, y)
		v.Release(100, y, t0)
		v.Press(100, y)
		v.Release(100, y, t0.Add(50*time.Millisecond))
	}

	a, _ := h.Card(0)
	b, _ := h.Card(1)
	assert.Equal(t, hand.Active, a.Status)
	assert.Equal(t, hand.NotInHand, b.Status)
	assert.Contains(t, v.Slots()[0].Classes, "card--active")
}

func TestHandViewToggleCheckbox(t *testing.T) {
	v, h := newTestView(hand.Presentation{ShowToggle: true}, visible("A", "B")...)

	v.Press(10, 50)
	v.Release(10, 50, time.Now())
	a, _ := h.Card(0)
	assert.False(t, a.Visible)
	// Still rendered while toggles are shown.
	require.Len(t, v.Slots(), 2)
	assert.Contains(t, v.Slots()[0].Classes, "card--hidden")
	assert.Equal(t, hand.ControlCheckbox, v.Slots()[0].Control)
}

func TestHandViewMarkerDoesNotToggle(t *testing.T) {
	v, h := newTestView(hand.Presentation{}, visible("A")...)
	v.Press(10, 50)
	v.Release(10, 50, time.Now())
	a, _ := h.Card(0)
	assert.True(t, a.Visible)
}

func TestHandViewSkipsHiddenCards(t *testing.T) {
	cards := visible("A", "B", "C")
	cards[1].Visible = false
	v, h := newTestView(hand.Presentation{}, cards...)

	slots := v.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, hand.CardID("C"), slots[1].Card.ID)
	assert.Equal(t, 2, slots[1].Card.Index)

	// Dragging A past C's midpoint moves it to C's hand index.
	v.Press(100, 10)
	v.Move(100, 170)
	assert.Equal(t, []hand.CardID{"B", "C", "A"}, h.Order())
	v.Release(100, 170, time.Now())
}

func TestHandViewTrackCursor(t *testing.T) {
	v, h := newTestView(hand.Presentation{}, visible("A", "B")...)
	v.TrackCursor = true

	// Grabbed low on A, the cursor itself is compared with B's midpoint.
	v.Press(100, 90)
	v.Move(100, 140)
	assert.Equal(t, []hand.CardID{"A", "B"}, h.Order())
	v.Move(100, 160)
	assert.Equal(t, []hand.CardID{"B", "A"}, h.Order())
	top, ok := v.DragTop()
	require.True(t, ok)
	assert.Equal(t, 70.0, top)
	v.Release(100, 160, time.Now())
}

func TestHandViewDragDownGrabbedLow(t *testing.T) {
	for _, grab := range []float64{50, 75, 99} {
		v, h := newTestView(hand.Presentation{}, visible("A", "B", "C")...)

		v.Press(100, grab)
		for y := grab + 5; y < 300; y += 5 {
			v.Move(100, y)
		}
		assert.Equal(t, []hand.CardID{"B", "C", "A"}, h.Order(), "grab %v", grab)

		// The drawn card keeps the real grab point.
		top, ok := v.DragTop()
		require.True(t, ok)
		assert.Equal(t, v.pointerY-grab, top)
		v.Release(100, 299, time.Now())
	}
}

func TestHandViewHoveredSlot(t *testing.T) {
	v, _ := newTestView(hand.Presentation{}, visible("A", "B")...)
	for _, s := range v.Slots() {
		assert.False(t, s.Hovered)
	}

	v.Move(100, 150)
	slots := v.Slots()
	assert.False(t, slots[0].Hovered)
	assert.True(t, slots[1].Hovered)
	assert.Contains(t, slots[1].Classes, "card--hover")

	// Right of the cards.
	v.Move(250, 150)
	assert.False(t, v.Slots()[1].Hovered)

	// The dragged card is not marked.
	v.Press(100, 50)
	v.Move(100, 60)
	require.NotNil(t, v.Controller().Session())
	assert.False(t, v.Slots()[0].Hovered)
}
