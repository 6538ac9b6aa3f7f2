package script

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-hand/hand"
)

var (
	ErrNoHand            = errors.New("no hand declared")
	ErrUnreachableStatus = errors.New("hand status unreachable")
)

// Result is the outcome of running a script.
type Result struct {
	Hand  *hand.Hand
	Swaps int
	Moves []hand.Decision
}

func (r Result) Order() []hand.CardID {
	if r.Hand == nil {
		return nil
	}
	return r.Hand.Order()
}

// Runner replays scripts against fresh hands.
type Runner struct {
	Character string
	Logger    *zap.Logger
}

func (r *Runner) Run(s *Script) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		res  Result
		ctrl *hand.Controller
	)
	for _, st := range s.Stmts {
		if _, ok := st.(HandStmt); !ok && ctrl == nil {
			return res, fmt.Errorf("%s: %w", position(st), ErrNoHand)
		}
		switch st := st.(type) {
		case HandStmt:
			cards := make([]hand.Card, len(st.IDs))
			for i, id := range st.IDs {
				cards[i] = hand.Card{ID: hand.CardID(id), Character: r.Character, Visible: true, Status: hand.InHand}
			}
			res.Hand = hand.New(cards...)
			ctrl = hand.NewController(res.Hand, hand.WithLogger(logger))
		case BeginStmt:
			if _, err := ctrl.BeginDrag(st.Index); err != nil {
				return res, fmt.Errorf("%s: %w", st.Pos, err)
			}
		case HoverStmt:
			d := ctrl.Hover(st.Index, hand.Rect{Top: st.Top, Bottom: st.Bottom}, st.Y)
			if d.Swap {
				res.Swaps++
				res.Moves = append(res.Moves, d)
			}
		case EndStmt:
			ctrl.EndDrag()
		case ToggleStmt:
			ctrl.ToggleCard(st.Index)
		case StatusStmt:
			if st.Name == "" {
				ctrl.ToggleHandStatus(st.Index)
				continue
			}
			if err := advanceStatus(ctrl, st.Index, st.Name); err != nil {
				return res, fmt.Errorf("%s: %w", st.Pos, err)
			}
		}
	}
	return res, nil
}

// advanceStatus toggles the card at index until its status reads name.
func advanceStatus(ctrl *hand.Controller, index int, name string) error {
	want, err := hand.ParseStatus(name)
	if err != nil {
		return err
	}
	owner := ctrl.Owner()
	for i := 0; i < 4; i++ {
		card, ok := owner.Card(index)
		if !ok {
			return fmt.Errorf("status of %d: %w", index, hand.ErrIndexOutOfRange)
		}
		if card.Status == want {
			return nil
		}
		ctrl.ToggleHandStatus(index)
	}
	card, _ := owner.Card(index)
	return fmt.Errorf("%w: %s cannot reach %s", ErrUnreachableStatus, card.Status, want)
}

func position(st Stmt) lexer.Position {
	switch st := st.(type) {
	case HandStmt:
		return st.Pos
	case BeginStmt:
		return st.Pos
	case HoverStmt:
		return st.Pos
	case EndStmt:
		return st.Pos
	case ToggleStmt:
		return st.Pos
	case StatusStmt:
		return st.Pos
	}
	return lexer.Position{}
}
