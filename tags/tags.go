package tags

import "github.com/yohamta/donburi"

var (
	// Console marks the single entity that owns the stick, the indicators
	// and, in game mode, the panel.
	Console = donburi.NewTag().SetName("Console")
	// Game marks a console that runs the platformer rather than only
	// mirroring the stick on the indicators.
	Game = donburi.NewTag().SetName("Game")
)
