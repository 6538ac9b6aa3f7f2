package hand

import "github.com/oklog/ulid/v2"

// Session is the in-progress drag of exactly one card.
type Session struct {
	ID     ulid.ULID
	CardID CardID
	// Origin is the card's index when the drag began.
	Origin int
	index  int
}

// Index returns the live position of the dragged card. It follows every swap
// committed during the drag.
func (s *Session) Index() int { return s.index }

// UpdateIndex records the dragged card's position after a committed swap.
func (s *Session) UpdateIndex(index int) { s.index = index }

// Moved reports whether the card has left its starting position.
func (s *Session) Moved() bool { return s.index != s.Origin }

// Tracker holds the single active drag session.
type Tracker struct {
	active *Session
}

// Begin starts a session for the card at index. Only one session may be
// active at a time.
func (t *Tracker) Begin(id CardID, index int) (*Session, error) {
	if t.active != nil {
		return nil, ErrDragActive
	}
	t.active = &Session{
		ID:     ulid.Make(),
		CardID: id,
		Origin: index,
		index:  index,
	}
	return t.active, nil
}

// Active returns the current session or nil.
func (t *Tracker) Active() *Session { return t.active }

// End clears the active session and returns it. Ending without a session is
// a no-op that returns nil.
func (t *Tracker) End() *Session {
	s := t.active
	t.active = nil
	return s
}
