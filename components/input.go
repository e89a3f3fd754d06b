package components

import (
	"github.com/automoto/joyplat/input"
	"github.com/yohamta/donburi"
)

// ControlData is this tick's stick reading and what it means.
type ControlData struct {
	Sample input.Sample
	Intent input.Intent
}

var Control = donburi.NewComponentType[ControlData]()
