package hand

import (
	"fmt"

	"go.uber.org/zap"
)

// Controller routes drag and toggle input for one hand. It owns the drag
// tracker and is driven from a single event loop; it is not safe for
// concurrent use.
type Controller struct {
	owner   Owner
	tracker Tracker
	logger  *zap.Logger
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func NewController(owner Owner, opts ...Option) *Controller {
	c := &Controller{owner: owner, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Owner() Owner { return c.owner }

// Session returns the active drag session, or nil.
func (c *Controller) Session() *Session { return c.tracker.Active() }

// BeginDrag starts dragging the card at index.
func (c *Controller) BeginDrag(index int) (*Session, error) {
	card, ok := c.owner.Card(index)
	if !ok {
		return nil, fmt.Errorf("begin drag at %d: %w", index, ErrIndexOutOfRange)
	}
	s, err := c.tracker.Begin(card.ID, index)
	if err != nil {
		return nil, fmt.Errorf("begin drag of %s: %w", card.ID, err)
	}
	c.logger.Debug("drag started",
		zap.Stringer("session", s.ID),
		zap.String("card", string(card.ID)),
		zap.Int("index", index))
	return s, nil
}

// Hover handles the pointer moving over the card at hovered while a drag is
// active. On a swap the owner has been reordered and the session index
// already equals hovered when Hover returns.
func (c *Controller) Hover(hovered int, r Rect, pointerY float64) Decision {
	s := c.tracker.Active()
	d := Step(s, c.owner, c.owner.Len(), hovered, r, pointerY)
	if d.Swap {
		c.logger.Debug("cards swapped",
			zap.Stringer("session", s.ID),
			zap.Int("from", d.From),
			zap.Int("to", d.To))
	}
	return d
}

// EndDrag finishes the active drag on drop or cancel. Without an active
// session it does nothing.
func (c *Controller) EndDrag() {
	s := c.tracker.End()
	if s == nil {
		return
	}
	c.logger.Debug("drag ended",
		zap.Stringer("session", s.ID),
		zap.String("card", string(s.CardID)),
		zap.Int("origin", s.Origin),
		zap.Int("index", s.Index()),
		zap.Bool("moved", s.Moved()))
}

func (c *Controller) ToggleCard(index int) {
	c.owner.ToggleCard(index)
	c.logger.Debug("visibility toggled", zap.Int("index", index))
}

func (c *Controller) ToggleHandStatus(index int) {
	c.owner.ToggleHandStatus(index)
	c.logger.Debug("hand status toggled", zap.Int("index", index))
}
