//go:build tinygo

// Command joyplat-firmware runs the console on a microcontroller board
// with the stick on two ADC pins, four indicator LEDs and the panel on
// I²C. Build with: tinygo flash -target=esp32 ./cmd/joyplat-firmware
package main

import (
	"context"
	"machine"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/core"
	"github.com/automoto/joyplat/indicator"
)

const (
	pinStickX = machine.GPIO33
	pinStickY = machine.GPIO32
	pinSCL    = machine.GPIO14
	pinSDA    = machine.GPIO13
)

// adcMax is the full-scale value of machine.ADC.Get.
const adcMax = 0xFFFF

type sensor struct {
	adcs map[int]machine.ADC
}

func (s sensor) ReadAxis(ch int) (int, error) {
	adc, ok := s.adcs[ch]
	if !ok {
		return cfg.Input.X.Center, nil
	}
	return int(adc.Get()) * cfg.Input.SensorMax / adcMax, nil
}

type leds [indicator.LineCount]machine.Pin

func (l *leds) Set(line indicator.Line, on bool) error {
	l[line].Set(on)
	return nil
}

type i2cWriter struct {
	bus  *machine.I2C
	addr uint16
}

func (w i2cWriter) Write(p []byte) (int, error) {
	if err := w.bus.Tx(w.addr, p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func main() {
	machine.InitADC()
	x := machine.ADC{Pin: pinStickX}
	y := machine.ADC{Pin: pinStickY}
	x.Configure(machine.ADCConfig{})
	y.Configure(machine.ADCConfig{})

	lines := &leds{
		indicator.Up:    machine.GPIO25,
		indicator.Down:  machine.GPIO26,
		indicator.Left:  machine.GPIO27,
		indicator.Right: machine.GPIO4,
	}
	for _, p := range lines {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz, SCL: pinSCL, SDA: pinSDA}); err != nil {
		println("i2c:", err.Error())
		return
	}
	time.Sleep(10 * time.Millisecond)

	hw := core.Hardware{
		Sensor: sensor{adcs: map[int]machine.ADC{
			cfg.Input.X.Channel: x,
			cfg.Input.Y.Channel: y,
		}},
		Lines:   lines,
		Display: ssd1306I2C(bus),
	}
	driver, err := core.Setup(hw, core.ModeGame, "")
	if err != nil {
		println("setup:", err.Error())
		return
	}

	loop := core.NewGameLoop(driver, cfg.Loop.FrameDelay)
	if err := loop.Run(context.Background()); err != nil {
		println("loop:", err.Error())
	}
}
