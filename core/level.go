package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/joyplat/assets"
	"github.com/automoto/joyplat/game"
	"github.com/automoto/joyplat/shared/leveldata"
)

// LoadLevel reads a TMX level from disk, or the embedded default level when
// path is empty, and prepares it with the configured parameters.
func LoadLevel(path string) (*game.Level, error) {
	var (
		data *leveldata.LevelData
		err  error
	)
	if path == "" {
		data, err = assets.LoadDefaultLevel()
	} else {
		data, err = leveldata.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	p := game.ParamsFromConfig()
	if data.MapWidth != int(p.Width) || data.MapHeight != int(p.Height) {
		log.Printf("Level %q is %dx%d, playing it on a %.0fx%.0f field",
			data.Name, data.MapWidth, data.MapHeight, p.Width, p.Height)
	}
	return game.NewLevel(data, p), nil
}
