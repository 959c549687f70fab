package scene

import (
	"github.com/glitchworks/gldemo/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game runs the scenes in a window. Tab switches scenes, Escape quits.
type Game struct {
	scenes []Scene
	index  int
	ticks  int
}

func NewGame() *Game {
	return &Game{
		scenes: []Scene{NewCube(), NewTriangle()},
	}
}

func (g *Game) current() Scene { return g.scenes[g.index] }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		logging.Info("Exiting.")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.index = (g.index + 1) % len(g.scenes)
		logging.Info("Switched scene.", logging.String("scene", g.current().Name()))
	}
	g.current().Update(1.0 / ticksPerSec)
	g.ticks++
	if g.ticks%(10*ticksPerSec) == 0 {
		logging.Debug("Still running.",
			logging.String("scene", g.current().Name()),
			logging.Int("ticks", g.ticks),
			logging.Float("tps", ebiten.ActualTPS()))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.current().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until the demo exits.
func Run() error {
	game := NewGame()
	ebiten.SetWindowTitle("gldemo")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetTPS(ticksPerSec)
	logging.Info("Opening window.", logging.String("scene", game.current().Name()))
	return ebiten.RunGame(game)
}
