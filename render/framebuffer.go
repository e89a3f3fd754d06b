// Package render draws the game into a 1-bit framebuffer.
package render

import (
	"image"
	"image/color"
)

var (
	Off = color.Gray{Y: 0}
	On  = color.Gray{Y: 0xff}
)

// Model converts any color to Off or On by luminance.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if lit(c) {
		return On
	}
	return Off
})

func lit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}

// Framebuffer is a width × height bitmap, one bit per pixel, rows stored
// top to bottom with the leftmost pixel in the most significant bit.
type Framebuffer struct {
	Width  int
	Height int
	Stride int // bytes per row
	Pix    []byte
}

// NewFramebuffer allocates a cleared framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := (width + 7) / 8
	return &Framebuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	clear(fb.Pix)
}

// Pixel reports whether (x, y) is on. Outside the buffer is off.
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	return fb.Pix[y*fb.Stride+x/8]&(0x80>>(x%8)) != 0
}

// SetPixel sets (x, y); writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Stride + x/8
	mask := byte(0x80 >> (x % 8))
	if on {
		fb.Pix[i] |= mask
	} else {
		fb.Pix[i] &^= mask
	}
}

// FillRect sets every pixel of the clipped rectangle.
func (fb *Framebuffer) FillRect(x, y, w, h int, on bool) {
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			fb.SetPixel(px, py, on)
		}
	}
}

// CountLit returns the number of pixels that are on.
func (fb *Framebuffer) CountLit() int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func (fb *Framebuffer) ColorModel() color.Model { return Model }

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

func (fb *Framebuffer) At(x, y int) color.Color {
	if fb.Pixel(x, y) {
		return On
	}
	return Off
}

func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, lit(c))
}
