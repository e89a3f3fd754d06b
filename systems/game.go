package systems

import (
	"github.com/automoto/joyplat/components"
	"github.com/automoto/joyplat/game"
	"github.com/yohamta/donburi"
)

// UpdateGame advances the committed state by one tick into Pending.
func UpdateGame(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	session := components.Session.Get(e)
	intent := components.Control.Get(e).Intent

	next, events := game.Step(session.Level, session.State, intent)
	components.Pending.SetValue(e, components.PendingData{
		State:  next,
		Events: events,
		Ready:  true,
	})
	return nil
}
