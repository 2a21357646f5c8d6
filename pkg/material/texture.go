package material

import (
	"math"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// SolidTexture provides a uniform color regardless of coordinates
type SolidTexture struct {
	Color core.Vec3
}

// NewSolidTexture creates a new solid color texture
func NewSolidTexture(color core.Vec3) *SolidTexture {
	return &SolidTexture{Color: color}
}

// At implements the Texture interface
func (s *SolidTexture) At(uv core.Vec2) core.Vec3 {
	return s.Color
}

// GridTexture draws grid lines over a fill color, useful for floors and
// debugging UV mappings
type GridTexture struct {
	FillColor core.Vec3
	LineColor core.Vec3
	CellSize  float64 // Cell side length in UV units
	LineWidth float64 // Line width as a fraction of the cell size
}

// NewGridTexture creates a grid with the given cell size and line width
func NewGridTexture(fill, line core.Vec3, cellSize, lineWidth float64) *GridTexture {
	return &GridTexture{FillColor: fill, LineColor: line, CellSize: cellSize, LineWidth: lineWidth}
}

// At implements the Texture interface
func (g *GridTexture) At(uv core.Vec2) core.Vec3 {
	u := math.Mod(math.Mod(uv.X/g.CellSize, 1)+1, 1)
	v := math.Mod(math.Mod(uv.Y/g.CellSize, 1)+1, 1)
	half := g.LineWidth / 2
	if u < half || u > 1-half || v < half || v > 1-half {
		return g.LineColor
	}
	return g.FillColor
}

// ImageTexture looks colors up in a loaded image. Coordinates wrap, and v
// is flipped because image rows run top-down.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first
}

// NewImageTexture creates a texture over a row-major pixel array
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// At implements the Texture interface with nearest-neighbor lookup
func (t *ImageTexture) At(uv core.Vec2) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 0, 0)
	}
	u := math.Mod(math.Mod(uv.X, 1)+1, 1)
	v := math.Mod(math.Mod(uv.Y, 1)+1, 1)

	x := int(u * float64(t.Width))
	y := int((1 - v) * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}
