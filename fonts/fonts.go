package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	// HUD is the face used for the score overlay.
	HUD FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{
		HUD: basicfont.Face7x13,
	}
)

// Register installs face under name, replacing any previous face.
func Register(name FontName, face font.Face) {
	fonts[name] = face
}

// LoadTTF parses a TrueType font and registers it, fully hinted, at the
// given pixel size.
func LoadTTF(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return nil
}

// LoadFile reads a TTF file from disk and registers it.
func LoadFile(name FontName, path string, size float64) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return LoadTTF(name, ttf, size)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
