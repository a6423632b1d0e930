package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a row-major grid of linear colors.
// Distinct pixels may be written concurrently.
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the color at (x, y). Out of range coordinates panic.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.pixels[c.index(x, y)] = color
}

// PixelAt returns the color at (x, y). Out of range coordinates panic.
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// ToRGBA converts the canvas to an 8-bit image, clamping each channel to [0, 1]
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, toRGBA(c.PixelAt(x, y)))
		}
	}
	return img
}

func toRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}
