package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const drawPadding = 10

// DrawScene renders the hitboxes' world-space outlines to a PNG at the given
// path, scaled to the scene's bounding box, and prints the image inline to
// out (pass nil to skip, or os.Stdout in an imgcat-capable terminal).
func DrawScene(path string, scale float64, out *os.File, hitboxes ...*Hitbox) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, hb := range hitboxes {
		for _, s := range hb.Lines {
			for _, p := range [2]Point{s.A, s.B} {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
				found = true
			}
		}
	}
	if !found {
		return nil
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, hb := range hitboxes {
		if len(hb.Lines) == 0 {
			continue
		}
		c.MoveTo(hb.Lines[0].A.X, hb.Lines[0].A.Y)
		for _, s := range hb.Lines {
			c.LineTo(s.B.X, s.B.Y)
		}
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if out != nil {
		imgcat.CatFile(path, out)
	}
	return nil
}
