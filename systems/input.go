package systems

import (
	"fmt"
	"log"

	"github.com/automoto/joyplat/components"
	"github.com/yohamta/donburi"
)

// UpdateInput samples the stick and stores the classified intent.
// Must run before every other stage.
func UpdateInput(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	devices := components.Devices.Get(e)
	stats := components.Stats.Get(e)
	stats.Ticks++

	sample, intent, err := devices.Sampler.Sample()
	if err != nil {
		return fmt.Errorf("sample stick: %w", err)
	}
	components.Control.SetValue(e, components.ControlData{Sample: sample, Intent: intent})

	if stats.Verbose {
		log.Printf("X: %d, Y: %d (%s)", sample.X, sample.Y, intent)
	}
	return nil
}

// UpdateIndicators mirrors the current intent on the indicator lines.
func UpdateIndicators(w donburi.World) error {
	e, err := console(w)
	if err != nil {
		return err
	}
	intent := components.Control.Get(e).Intent
	if err := components.Devices.Get(e).Indicators.Apply(intent); err != nil {
		return fmt.Errorf("indicators: %w", err)
	}
	return nil
}
