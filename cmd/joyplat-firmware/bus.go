//go:build tinygo

package main

import (
	"machine"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/display/ssd1306"
)

func ssd1306I2C(bus *machine.I2C) *ssd1306.I2CBus {
	return ssd1306.NewI2CBus(i2cWriter{bus: bus, addr: cfg.Display.Address})
}
