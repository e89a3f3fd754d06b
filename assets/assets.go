package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/joyplat/shared/leveldata"
)

// DefaultLevelPath is the embedded level used when no file is given.
const DefaultLevelPath = "levels/default.tmx"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadDefaultLevel parses the embedded default level.
func LoadDefaultLevel() (*leveldata.LevelData, error) {
	data, err := leveldata.LoadLevel(assetFS, DefaultLevelPath)
	if err != nil {
		return nil, fmt.Errorf("default level: %w", err)
	}
	return data, nil
}
