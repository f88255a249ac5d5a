package pixel

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// IconSize is the edge length of every item icon.
const IconSize = 16

// Transparent is the background of a fresh icon canvas.
var Transparent = color.NRGBA{0, 0, 0, 0}

// Canvas is a small raster that icons are composed on. Pixels are replaced,
// never blended: a translucent color is stored with its alpha as-is.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.NRGBA) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if bg != Transparent {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, bg)
			}
		}
	}
	return &Canvas{img: img}
}

// NewIcon creates a transparent 16×16 canvas.
func NewIcon() *Canvas {
	return NewCanvas(IconSize, IconSize, Transparent)
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image exposes the backing raster for encoding and compositing.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// At returns the pixel at (x, y), or Transparent outside the canvas.
func (c *Canvas) At(x, y int) color.NRGBA {
	if !image.Pt(x, y).In(c.img.Rect) {
		return Transparent
	}
	return c.img.NRGBAAt(x, y)
}

// Set replaces a single pixel. Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// Line draws a 1px line between two points, both endpoints included.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect fills the rectangle spanning both corners, inclusive.
func (c *Canvas) Rect(x0, y0, x1, y1 int, col color.NRGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// Opaque counts pixels with non-zero alpha.
func (c *Canvas) Opaque() int {
	n := 0
	b := c.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

// Encode writes the canvas as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Save writes the canvas as a PNG file at path.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
