package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/joyplat/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ErrBadObject is returned for objects with negative extents.
var ErrBadObject = errors.New("bad level object")

// LoadLevel parses a TMX file and returns its platforms, coins and spawn
// point. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: platform %d: %w", tmxPath, o.ID, err)
				}
				data.Platforms = append(data.Platforms, r)
			}
		case GroupCoins:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: coin %d: %w", tmxPath, o.ID, err)
				}
				data.Coins = append(data.Coins, r)
			}
		case GroupSpawn:
			// First spawn object wins; the game has a single player.
			if len(og.Objects) > 0 && !data.HasSpawn {
				data.Spawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
				data.HasSpawn = true
			}
		}
	}

	return data, nil
}

func objectRect(o *tiled.Object) (gamemath.Rect, error) {
	if o.Width < 0 || o.Height < 0 {
		return gamemath.Rect{}, fmt.Errorf("%w: size %vx%v", ErrBadObject, o.Width, o.Height)
	}
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}, nil
}
