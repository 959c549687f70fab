package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// source image for DrawTriangles; the inner pixel avoids bleeding at the borders
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Triangle is the classic rotating triangle with one red, one green and one
// blue corner.
type Triangle struct {
	angle float64
}

func NewTriangle() *Triangle {
	return &Triangle{}
}

func (s *Triangle) Name() string { return "triangle" }

func (s *Triangle) Update(dt float64) {
	s.angle += dt * 1.2
	if s.angle > 2*math.Pi {
		s.angle -= 2 * math.Pi
	}
}

func (s *Triangle) Draw(screen *ebiten.Image) {
	const radius = 0.9
	vertices := make([]ebiten.Vertex, 3)
	for i := range vertices {
		corner := s.angle + float64(i)*(2*math.Pi/3) + math.Pi/2
		sx, sy := project(radius*math.Cos(corner), radius*math.Sin(corner), 2.0)
		vertices[i].DstX = sx
		vertices[i].DstY = sy
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorA = 1
	}
	vertices[0].ColorR = 1
	vertices[1].ColorG = 1
	vertices[2].ColorB = 1
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, nil)
}
