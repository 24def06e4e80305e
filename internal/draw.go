package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
)

// This is for debugging purposes only

// Padding around the triangulation, in pixels
const dbgDrawPadding = 20

// Render the triangles to a PNG at path. The origin is put at the top left, to
// match the screen coordinates regions are usually given in. If labels is set,
// each triangle is tagged with its readable debug name at its centroid.
func (list TriangleList) DebugDraw(path string, scale float64, labels bool) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range list.Vertices() {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(list) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range list {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 0.4, 0)
	for _, p := range list.Vertices() {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if labels {
		c.SetRGB(1, 1, 1)
		for _, t := range list {
			// Text is drawn in native coordinates so it doesn't get scaled
			x, y := c.TransformPoint(t.Centroid().X, t.Centroid().Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
			c.Pop()
		}
	}

	return c.SavePNG(path)
}

// Print a PNG inline in the terminal (iTerm only)
func CatImage(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
