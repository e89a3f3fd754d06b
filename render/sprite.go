package render

// Sprite is a small 1-bit bitmap, rows top to bottom, MSB leftmost.
type Sprite struct {
	Width  int
	Height int
	Pix    []byte
}

// PlayerSprite is the 8×8 ring drawn for the player.
var PlayerSprite = Sprite{
	Width:  8,
	Height: 8,
	Pix:    []byte{0x3C, 0x42, 0x99, 0xBD, 0xBD, 0x99, 0x42, 0x3C},
}

func (s Sprite) stride() int {
	return (s.Width + 7) / 8
}

// Bit returns the sprite value at (x, y).
func (s Sprite) Bit(x, y int) bool {
	return s.Pix[y*s.stride()+x/8]&(0x80>>(x%8)) != 0
}

// Blit copies s onto fb with its top-left corner at (x, y). Sprite pixels
// equal to key are transparent and leave fb unchanged.
func (fb *Framebuffer) Blit(s Sprite, x, y int, key bool) {
	for sy := 0; sy < s.Height; sy++ {
		for sx := 0; sx < s.Width; sx++ {
			v := s.Bit(sx, sy)
			if v == key {
				continue
			}
			fb.SetPixel(x+sx, y+sy, v)
		}
	}
}
