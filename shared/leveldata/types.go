// Package leveldata provides TMX level parsing for the platformer.
// It has no dependencies on the game engine or the display, pure data only.
package leveldata

import "github.com/automoto/joyplat/shared/gamemath"

// Object group names read from a TMX file.
const (
	GroupPlatforms = "Platforms"
	GroupCoins     = "Coins"
	GroupSpawn     = "PlayerSpawn"
)

// LevelData holds everything the game needs from a level file.
type LevelData struct {
	Name      string
	MapWidth  int
	MapHeight int

	// Platforms keep the order of the object group; collision tie-breaks
	// depend on it.
	Platforms []gamemath.Rect

	// Coins with zero width or height are point objects and take the
	// configured coin size.
	Coins []gamemath.Rect

	Spawn    SpawnPoint
	HasSpawn bool
}

// SpawnPoint represents the player start location.
type SpawnPoint struct {
	X, Y float64
}
