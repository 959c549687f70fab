// Package scene contains the demo's animated scenes and the window loop that
// drives them.
package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// A Scene is one animated visual. Update advances the animation by dt seconds;
// Draw renders the current state.
type Scene interface {
	Name() string
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

const (
	screenWidth  = 640
	screenHeight = 480
	ticksPerSec  = 60
)

var backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// project maps a camera-space point onto the screen with a simple perspective
// divide. z must be positive (in front of the camera).
func project(x, y, z float64) (sx, sy float32) {
	const focal = 1.8
	scale := focal / z * (screenHeight / 2)
	return float32(screenWidth/2 + x*scale), float32(screenHeight/2 - y*scale)
}
