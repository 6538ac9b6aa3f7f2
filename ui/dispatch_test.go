package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type eventLog struct {
	events []string
}

func (l *eventLog) zone(key string, r Rect, draggable bool) *Zone {
	rec := func(ev MouseEvent) {
		l.events = append(l.events, key+":"+ev.Action.String())
	}
	return &Zone{
		Key: key, Rect: r, Draggable: draggable,
		Press: rec, Release: rec, Click: rec, DoubleClick: rec,
		Enter: rec, Leave: rec,
		DragStart: rec, DragOver: rec, Drop: rec, Cancel: rec,
	}
}

func (l *eventLog) take() []string {
	events := l.events
	l.events = nil
	return events
}

func newTestDispatcher(l *eventLog) *Dispatcher {
	d := NewDispatcher()
	d.SetZones([]*Zone{
		l.zone("a", Rect{0, 0, 10, 10}, true),
		l.zone("b", Rect{0, 10, 10, 10}, false),
	})
	return d
}

func TestDispatcherHover(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Move(5, 5)
	d.Move(6, 6)
	assert.Equal(t, []string{"a:enter"}, l.take())
	assert.True(t, d.Zones()[0].Hovered())

	d.Move(5, 15)
	assert.Equal(t, []string{"a:leave", "b:enter"}, l.take())
	assert.False(t, d.Zones()[0].Hovered())

	d.Move(50, 50)
	assert.Equal(t, []string{"b:leave"}, l.take())
}

func TestDispatcherTopmostWins(t *testing.T) {
	l := &eventLog{}
	d := NewDispatcher()
	d.SetZones([]*Zone{
		l.zone("under", Rect{0, 0, 10, 10}, false),
		l.zone("over", Rect{0, 0, 5, 5}, false),
	})
	d.Press(2, 2)
	assert.Equal(t, []string{"over:press"}, l.take())
	d.Release(2, 2, time.Now())
	l.take()
	d.Press(8, 8)
	assert.Equal(t, []string{"under:press"}, l.take())
}

func TestDispatcherClicks(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)
	t0 := time.Unix(100, 0)

	d.Press(5, 5)
	d.Release(5, 5, t0)
	assert.Equal(t, []string{"a:press", "a:release", "a:click"}, l.take())

	d.Press(5, 5)
	d.Release(5, 5, t0.Add(100*time.Millisecond))
	assert.Equal(t, []string{"a:press", "a:release", "a:double-click"}, l.take())

	d.Press(5, 5)
	d.Release(5, 5, t0.Add(200*time.Millisecond))
	assert.Equal(t, []string{"a:press", "a:release", "a:click"}, l.take())

	d.Press(5, 5)
	d.Release(5, 5, t0.Add(time.Second))
	assert.Equal(t, []string{"a:press", "a:release", "a:click"}, l.take())
}

func TestDispatcherReleaseElsewhereIsNotClick(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Press(5, 15)
	d.Release(5, 5, time.Now())
	assert.Equal(t, []string{"b:press", "b:release"}, l.take())
}

func TestDispatcherDrag(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)
	d.Move(5, 5)
	l.take()

	d.Press(5, 5)
	d.Move(6, 6)
	assert.False(t, d.Dragging())
	assert.Equal(t, []string{"a:press"}, l.take())

	d.Move(5, 15)
	assert.True(t, d.Dragging())
	assert.Equal(t, []string{"a:leave", "b:enter", "a:drag-start", "b:drag-motion"}, l.take())

	d.Release(5, 15, time.Now())
	assert.False(t, d.Dragging())
	assert.Nil(t, d.Pressed())
	assert.Equal(t, []string{"b:drag-release", "a:release"}, l.take())
}

func TestDispatcherDragStartCarriesPressPoint(t *testing.T) {
	var start MouseEvent
	d := NewDispatcher()
	d.SetZones([]*Zone{{
		Key: "a", Rect: Rect{0, 100, 50, 100}, Draggable: true,
		DragStart: func(ev MouseEvent) { start = ev },
	}})

	d.Press(10, 130)
	d.Move(10, 160)
	assert.Equal(t, 130.0, start.Y)
	assert.Equal(t, 30.0, start.RelY)
	assert.Equal(t, MouseDragStart, start.Action)
}

func TestDispatcherNotDraggable(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Press(5, 15)
	d.Move(5, 2)
	assert.False(t, d.Dragging())
	assert.Equal(t, []string{"b:press", "a:enter"}, l.take())
}

func TestDispatcherCancel(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Press(5, 5)
	d.Move(5, 15)
	l.take()

	d.Cancel()
	assert.Equal(t, []string{"a:drag-cancel"}, l.take())
	d.Release(5, 15, time.Now())
	assert.Empty(t, l.take())
}

func TestDispatcherSetZonesKeepsGesture(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Press(5, 5)
	d.Move(5, 15)
	l.take()

	// Rebuilt zones with "a" now at the bottom.
	d.SetZones([]*Zone{
		l.zone("b", Rect{0, 0, 10, 10}, false),
		l.zone("a", Rect{0, 10, 10, 10}, true),
	})
	assert.True(t, d.Dragging())
	assert.Equal(t, "a", d.Pressed().Key)

	d.Release(5, 15, time.Now())
	assert.Equal(t, []string{"a:drag-release", "a:release"}, l.take())
}

func TestDispatcherSetZonesDropsRemovedPress(t *testing.T) {
	l := &eventLog{}
	d := newTestDispatcher(l)

	d.Press(5, 5)
	d.Move(5, 15)
	d.SetZones([]*Zone{l.zone("b", Rect{0, 10, 10, 10}, false)})
	assert.False(t, d.Dragging())
	assert.Nil(t, d.Pressed())
}
