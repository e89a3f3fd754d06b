package systems

import (
	"fmt"

	"github.com/automoto/joyplat/components"
	"github.com/yohamta/donburi"
)

// FlushDisplay sends the frame buffer to the panel.
func FlushDisplay(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	if !components.Pending.Get(e).Ready {
		return nil
	}
	fb := components.Frame.Get(e).Buffer
	if err := components.Devices.Get(e).Panel.Flush(fb); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
