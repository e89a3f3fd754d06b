package components

import (
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/render"
	"github.com/yohamta/donburi"
)

// DevicesData wires the console entity to its hardware. Panel and Renderer
// are nil in joystick-only mode.
type DevicesData struct {
	Sampler    *input.Sampler
	Indicators *indicator.Driver
	Renderer   *render.Renderer
	Panel      *ssd1306.Panel
}

var Devices = donburi.NewComponentType[DevicesData]()
