package hand

import "fmt"

// Control is the toggle widget drawn next to a card.
type Control int

const (
	// ControlCheckbox toggles visibility on click.
	ControlCheckbox Control = iota
	// ControlMarker is a static marker with no action.
	ControlMarker
)

// Presentation holds the display rules shared by every host.
type Presentation struct {
	// ShowToggle is set while the player is choosing which cards to bring.
	// Hidden cards stay on screen so they can be toggled back on.
	ShowToggle bool
}

// Rendered reports whether c takes up a slot on screen at all.
func (p Presentation) Rendered(c Card) bool {
	return p.ShowToggle || c.Visible
}

func (p Presentation) Control() Control {
	if p.ShowToggle {
		return ControlCheckbox
	}
	return ControlMarker
}

// Classes returns the style classes for c, most general first.
func Classes(c Card, dragging bool) []string {
	classes := []string{"card"}
	if !c.Visible {
		classes = append(classes, "card--hidden")
	}
	if dragging {
		classes = append(classes, "card--dragged")
	}
	if c.Status != NotInHand && c.Status != InHand {
		classes = append(classes, "card--"+c.Status.String())
	}
	return classes
}

// CanToggleStatus reports whether a double click on c changes its hand
// status.
func CanToggleStatus(c Card, dragging bool) bool {
	return !dragging && c.Visible && c.Status != NotInHand
}

// ImagePath is the asset path of a card's artwork.
func ImagePath(c Card) string {
	return fmt.Sprintf("cards/%s-%s.jpg", c.Character, c.ID)
}
