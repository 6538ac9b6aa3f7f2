package screens

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SvenDH/go-card-hand/ui"
)

// Program runs a hand view as an ebiten game.
type Program struct {
	View                   *ui.HandView
	Width, Height          int
	ShowDebug              bool
	LastMouseX, LastMouseY int

	renderer *Renderer
}

func NewProgram(view *ui.HandView, width, height int) *Program {
	return &Program{
		View:     view,
		Width:    width,
		Height:   height,
		renderer: NewRenderer(),
	}
}

func (p *Program) Update() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.View.Press(x, y)
	}
	if mx != p.LastMouseX || my != p.LastMouseY {
		p.View.Move(x, y)
		p.LastMouseX = mx
		p.LastMouseY = my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.View.Release(x, y, time.Now())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.View.Cancel()
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.View)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}

// Run opens a window and blocks until it is closed.
func (p *Program) Run(title string) error {
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(p)
}
