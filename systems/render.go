package systems

import (
	"github.com/automoto/joyplat/components"
	"github.com/yohamta/donburi"
)

// DrawFrame renders the pending state into the frame buffer.
func DrawFrame(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	pending := components.Pending.Get(e)
	if !pending.Ready {
		return nil
	}
	renderer := components.Devices.Get(e).Renderer
	level := components.Session.Get(e).Level
	renderer.Render(level, pending.State, components.Frame.Get(e).Buffer)
	return nil
}
