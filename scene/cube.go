package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Cube is a rotating wireframe cube.
type Cube struct {
	angle float64
}

func NewCube() *Cube {
	return &Cube{}
}

func (c *Cube) Name() string { return "cube" }

func (c *Cube) Update(dt float64) {
	c.angle += dt * 0.8
	if c.angle > 2*math.Pi {
		c.angle -= 2 * math.Pi
	}
}

var cubeVertices = [8][3]float64{
	{-1, -1, -1},
	{+1, -1, -1},
	{+1, +1, -1},
	{-1, +1, -1},
	{-1, -1, +1},
	{+1, -1, +1},
	{+1, +1, +1},
	{-1, +1, +1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var cubeColor = color.RGBA{R: 0x6a, G: 0xd1, B: 0xff, A: 0xff}

func (c *Cube) Draw(screen *ebiten.Image) {
	const cameraDist = 4.0
	sinY, cosY := math.Sincos(c.angle)
	sinX, cosX := math.Sincos(c.angle * 0.7)

	var screenPos [8][2]float32
	for i, v := range cubeVertices {
		// rotate around Y, then X, then move in front of the camera
		x := v[0]*cosY + v[2]*sinY
		z := -v[0]*sinY + v[2]*cosY
		y := v[1]*cosX - z*sinX
		z = v[1]*sinX + z*cosX + cameraDist
		screenPos[i][0], screenPos[i][1] = project(x, y, z)
	}
	for _, e := range cubeEdges {
		a, b := screenPos[e[0]], screenPos[e[1]]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, cubeColor, true)
	}
}
