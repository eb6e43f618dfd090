// Package canvas implements the pixel grid that shapes are drawn on.
//
// A Canvas stores packed RGB colours and satisfies [image.Image], so it can
// be handed to any standard encoder without conversion.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmylchreest/hexgen/internal/colour"
)

// Canvas is a width x height grid of packed colours.
//
// A Canvas is owned by a single generation and is not safe for concurrent use.
type Canvas struct {
	// Rect is the canvas bounding box. Min is always the origin.
	Rect image.Rectangle

	// Pix holds the pixels in row-major order.
	Pix []colour.Packed

	// Stride is the Pix stride between vertically adjacent pixels.
	Stride int
}

// New returns a canvas of the given size with every pixel set to black.
func New(w, h int) *Canvas {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("canvas: negative size %dx%d", w, h))
	}
	return &Canvas{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]colour.Packed, w*h),
		Stride: w,
	}
}

// FromImage copies img into a new canvas. The result always starts at the
// origin, whatever img's bounds are.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.Pix[(y-b.Min.Y)*c.Stride+(x-b.Min.X)] = colour.Model.Convert(img.At(x, y)).(colour.Packed)
		}
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.Rect.Dy() }

// In reports whether (x, y) lies on the canvas.
func (c *Canvas) In(x, y int) bool {
	return image.Point{X: x, Y: y}.In(c.Rect)
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (c *Canvas) PixOffset(x, y int) int {
	return y*c.Stride + x
}

// Get returns the colour at (x, y). It panics when (x, y) is out of bounds.
func (c *Canvas) Get(x, y int) colour.Packed {
	c.mustContain(x, y)
	return c.Pix[c.PixOffset(x, y)]
}

// Set paints (x, y). It panics when (x, y) is out of bounds.
func (c *Canvas) Set(x, y int, p colour.Packed) {
	c.mustContain(x, y)
	c.Pix[c.PixOffset(x, y)] = p
}

// Fill sets every pixel to p.
func (c *Canvas) Fill(p colour.Packed) {
	for i := range c.Pix {
		c.Pix[i] = p
	}
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{
		Rect:   c.Rect,
		Pix:    make([]colour.Packed, len(c.Pix)),
		Stride: c.Stride,
	}
	copy(out.Pix, c.Pix)
	return out
}

// Count returns the number of pixels with colour p.
func (c *Canvas) Count(p colour.Packed) int {
	n := 0
	for _, v := range c.Pix {
		if v == p {
			n++
		}
	}
	return n
}

func (c *Canvas) mustContain(x, y int) {
	if !c.In(x, y) {
		panic(fmt.Sprintf("canvas: pixel (%d,%d) out of bounds %v", x, y, c.Rect))
	}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return colour.Model
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return c.Rect
}

// At implements image.Image. Unlike Get it does not panic; pixels outside
// the canvas are reported as black, matching the standard image types.
func (c *Canvas) At(x, y int) color.Color {
	if !c.In(x, y) {
		return colour.Packed(0)
	}
	return c.Pix[c.PixOffset(x, y)]
}

// Opaque reports that every pixel is fully opaque, which lets encoders
// write three colour channels without alpha.
func (c *Canvas) Opaque() bool {
	return true
}

// Interface checks.
var _ image.Image = (*Canvas)(nil)
