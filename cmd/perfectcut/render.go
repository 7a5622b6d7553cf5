package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/perfectcut"
)

// viewExtent is the half-size of the world window shown in the preview.
const viewExtent = 5.0

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorShape      = color.RGBA{R: 128, G: 128, B: 128, A: 160}
	colorPiece      = color.RGBA{R: 68, G: 136, B: 255, A: 180}
	colorKnife      = color.RGBA{R: 255, G: 75, B: 75, A: 255}
)

// canvas maps world coordinates in [-viewExtent, viewExtent] onto a square
// image with y pointing up.
type canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	size int
}

func newCanvas(size int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	return &canvas{img: img, rast: vector.NewRasterizer(size, size), size: size}
}

func (c *canvas) project(p perfectcut.Point) (float32, float32) {
	s := float64(c.size) / (2 * viewExtent)
	return float32((p.X + viewExtent) * s), float32((viewExtent - p.Y) * s)
}

func (c *canvas) fill(pts []perfectcut.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.rast.Reset(c.size, c.size)
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(c.project(pts[0]))
	for _, p := range pts[1:] {
		c.rast.LineTo(c.project(p))
	}
	c.rast.ClosePath()
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// line strokes a segment as a thin quad of the given world width.
func (c *canvas) line(a, b perfectcut.Point, width float64, col color.Color) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := perfectcut.Pt(-d.Y/l, d.X/l).Mul(width / 2)
	c.fill([]perfectcut.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, col)
}

// savePreview draws the shape, the kept pieces and the knife line.
func savePreview(path string, size int, s perfectcut.Session, cut perfectcut.CutResult) error {
	if size <= 0 {
		return fmt.Errorf("preview size %d must be positive", size)
	}
	c := newCanvas(size)
	c.fill(s.Shape.Points(), colorShape)
	for _, piece := range cut.Pieces {
		c.fill(piece.Points(), colorPiece)
	}
	a, b := s.Knife.Line(2 * viewExtent)
	c.line(a, b, 0.06, colorKnife)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
