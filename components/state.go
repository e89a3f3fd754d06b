package components

import (
	"github.com/automoto/joyplat/game"
	"github.com/yohamta/donburi"
)

// PendingData holds the state computed this tick. It only replaces the
// session state once the frame has reached the panel.
type PendingData struct {
	State  game.State
	Events game.Events
	Ready  bool
}

var Pending = donburi.NewComponentType[PendingData]()
