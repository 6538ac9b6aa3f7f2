package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

var (
	background  = color.NRGBA{0x1e, 0x1b, 0x18, 0xff}
	cardFill    = color.NRGBA{0xe8, 0xdc, 0xc4, 0xff}
	cardBorder  = color.NRGBA{0x6b, 0x5a, 0x45, 0xff}
	dragBorder  = color.NRGBA{0xf2, 0xc1, 0x4e, 0xff}
	hoverBorder = color.NRGBA{0xfa, 0xf3, 0xe3, 0xff}
	textColor   = color.NRGBA{0x20, 0x1a, 0x14, 0xff}
	statusFills = map[string]color.NRGBA{
		"card--active":  {0xa7, 0xd3, 0x8f, 0xff},
		"card--discard": {0xe3, 0xb5, 0x6b, 0xff},
		"card--lost":    {0xc9, 0x6a, 0x5f, 0xff},
	}
)

// Renderer draws hand view slots as flat cards.
type Renderer struct {
	face text.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *Renderer) Draw(screen *ebiten.Image, v *ui.HandView) {
	screen.Fill(background)

	var dragged *ui.Slot
	slots := v.Slots()
	for i := range slots {
		if slots[i].Dragging {
			dragged = &slots[i]
			continue
		}
		r.drawSlot(screen, slots[i], slots[i].Bounds)
	}
	// The dragged card follows the pointer and is drawn on top.
	if dragged != nil {
		bounds := dragged.Bounds
		if top, ok := v.DragTop(); ok {
			bounds.Y = top
		}
		r.drawSlot(screen, *dragged, bounds)
	}
}

func (r *Renderer) drawSlot(screen *ebiten.Image, s ui.Slot, b ui.Rect) {
	fill := cardFill
	border := cardBorder
	hidden := false
	for _, class := range s.Classes {
		if c, ok := statusFills[class]; ok {
			fill = c
		}
		switch class {
		case "card--hidden":
			hidden = true
		case "card--hover":
			border = hoverBorder
		case "card--dragged":
			border = dragBorder
		}
	}
	if hidden {
		fill.A = 0x60
	}

	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	tw := float32(s.Toggle.W)
	switch s.Control {
	case hand.ControlCheckbox:
		vector.StrokeRect(screen, x+4, y+4, tw-8, tw-8, 1, textColor, false)
		if s.Card.Visible {
			vector.DrawFilledRect(screen, x+7, y+7, tw-14, tw-14, textColor, false)
		}
	case hand.ControlMarker:
		vector.DrawFilledRect(screen, x+4, y+4, tw-8, 3, border, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(b.X+s.Toggle.W+6, b.Y+6)
	op.ColorScale.ScaleWithColor(textColor)
	op.LineSpacing = 16
	label := string(s.Card.ID) + "  " + s.Card.Status.String() + "\n" + hand.ImagePath(s.Card)
	text.Draw(screen, label, r.face, op)
}
