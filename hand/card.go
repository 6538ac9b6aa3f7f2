package hand

import "fmt"

// CardID identifies a card within a character's deck.
type CardID string

// Status is the lifecycle state a card occupies relative to the player's hand.
type Status int

const (
	NotInHand Status = iota
	InHand
	Active
	Discard
	Lost
)

var statusNames = [...]string{
	NotInHand: "not-in-hand",
	InHand:    "in-hand",
	Active:    "active",
	Discard:   "discard",
	Lost:      "lost",
}

func (s Status) String() string {
	if s < NotInHand || s > Lost {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return NotInHand, fmt.Errorf("invalid hand status %q", s)
}

// Next returns the status a card advances to when its hand status is toggled.
// Cards that are not in the hand stay where they are.
func (s Status) Next() Status {
	switch s {
	case InHand:
		return Active
	case Active:
		return Discard
	case Discard:
		return Lost
	case Lost:
		return InHand
	}
	return s
}

// Card is a single entry of a hand. Index is always the card's position in
// the owning Hand.
type Card struct {
	ID        CardID
	Index     int
	Character string
	Visible   bool
	Status    Status
}

func (c Card) String() string {
	return fmt.Sprintf("%s-%s@%d", c.Character, c.ID, c.Index)
}
