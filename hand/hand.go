package hand

// Mover commits a reorder decided by the hover resolver.
type Mover interface {
	// MoveCard removes the card at from and reinserts it at to, shifting the
	// cards in between by one position.
	MoveCard(from, to int)
}

// Toggler receives explicit user toggle requests.
type Toggler interface {
	ToggleCard(index int)
	ToggleHandStatus(index int)
}

// Owner is the container that owns the ordered card sequence.
type Owner interface {
	Mover
	Toggler
	Len() int
	Card(index int) (Card, bool)
}

// Hand is the ordered sequence of cards belonging to a player.
type Hand struct {
	cards []Card
}

// New creates a hand holding cards in the given order. Indices are rewritten
// to match that order.
func New(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards))}
	h.Add(cards...)
	return h
}

func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
	h.reindex()
}

func (h *Hand) Len() int { return len(h.cards) }

func (h *Hand) Card(index int) (Card, bool) {
	if !h.valid(index) {
		return Card{}, false
	}
	return h.cards[index], true
}

// Cards returns a copy of the hand in order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Order returns the card identities in hand order.
func (h *Hand) Order() []CardID {
	ids := make([]CardID, len(h.cards))
	for i, c := range h.cards {
		ids[i] = c.ID
	}
	return ids
}

func (h *Hand) MoveCard(from, to int) {
	if !h.valid(from) || !h.valid(to) || from == to {
		return
	}
	card := h.cards[from]
	h.cards = append(h.cards[:from], h.cards[from+1:]...)
	h.cards = append(h.cards[:to], append([]Card{card}, h.cards[to:]...)...)
	h.reindex()
}

func (h *Hand) ToggleCard(index int) {
	if !h.valid(index) {
		return
	}
	h.cards[index].Visible = !h.cards[index].Visible
}

func (h *Hand) ToggleHandStatus(index int) {
	if !h.valid(index) {
		return
	}
	h.cards[index].Status = h.cards[index].Status.Next()
}

func (h *Hand) valid(index int) bool {
	return index >= 0 && index < len(h.cards)
}

func (h *Hand) reindex() {
	for i := range h.cards {
		h.cards[i].Index = i
	}
}
