// Package renderer drives the render: camera ray generation, the film
// accumulator, region partitioning, and the sequential and parallel render
// loops.
package renderer

import (
	"image"
	"image/color"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Film is a width × height floating-point RGB accumulator. It is created
// once per render and converted to a displayable image only after all
// writes complete. Writers must own disjoint pixels; the film itself does
// no locking.
type Film struct {
	width  int
	height int
	pixels []core.Vec3 // row-major, y*width+x
}

// NewFilm creates a black film of the given dimensions
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the film width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels
func (f *Film) Height() int { return f.height }

// Get returns the color at pixel (x, y)
func (f *Film) Get(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// Set writes the color at pixel (x, y)
func (f *Film) Set(x, y int, c core.Vec3) {
	f.pixels[y*f.width+x] = c
}

// SetRegion writes a region's row-major colors at its row offset. The
// colors slice must hold exactly region rows × film width entries.
func (f *Film) SetRegion(region Region, colors []core.Vec3) {
	copy(f.pixels[region.YStart*f.width:], colors[:region.Rows()*f.width])
}

// ToImage converts the film to an 8-bit RGBA image, clamping each channel
// to [0, 1] and applying gamma 2.0
func (f *Film) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.Get(x, y).Clamp(0, 1).GammaCorrect(2.0)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
	return img
}
