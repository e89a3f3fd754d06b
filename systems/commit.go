package systems

import (
	"log"

	"github.com/automoto/joyplat/components"
	"github.com/yohamta/donburi"
)

// CommitState makes the pending state current. It runs last, so a tick
// that failed earlier leaves the session exactly as it was.
func CommitState(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	pending := components.Pending.Get(e)
	if !pending.Ready {
		return nil
	}
	session := components.Session.Get(e)
	stats := components.Stats.Get(e)

	session.State = pending.State
	stats.Committed++
	if pending.Events.Jumped {
		stats.Jumps++
	}
	if pending.Events.Landed {
		stats.Landings++
	}
	if n := len(pending.Events.Collected); n > 0 {
		stats.Coins += n
		log.Printf("Collected %d coin(s), score %d", n, session.State.Score)
	}

	pending.Ready = false
	return nil
}
