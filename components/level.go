package components

import (
	"github.com/automoto/joyplat/game"
	"github.com/yohamta/donburi"
)

// SessionData is the committed game: the level being played and the state
// shown on the panel after the last successful flush.
type SessionData struct {
	Level *game.Level
	State game.State
}

var Session = donburi.NewComponentType[SessionData]()
