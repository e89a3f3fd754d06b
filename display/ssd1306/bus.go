// Package ssd1306 drives SSD1306-class monochrome panels over a byte bus.
//
// The panel is organised in pages of 8 rows. Each data byte covers one
// column of one page, least significant bit at the top.
package ssd1306

import (
	"errors"
	"fmt"
	"io"
)

// Bus carries the two kinds of transfer the controller understands.
type Bus interface {
	WriteControl(cmd []byte) error
	WriteData(data []byte) error
}

// Transfer prefixes used on I²C.
const (
	prefixControl = 0x00
	prefixData    = 0x40
)

// I2CBus frames writes for an I²C device that is already addressed. Each
// call becomes a single transaction.
type I2CBus struct {
	w   io.Writer
	buf []byte
}

// NewI2CBus wraps a device writer such as a periph i2c.Dev.
func NewI2CBus(w io.Writer) *I2CBus {
	return &I2CBus{w: w}
}

func (b *I2CBus) WriteControl(cmd []byte) error {
	return b.write(prefixControl, cmd)
}

func (b *I2CBus) WriteData(data []byte) error {
	return b.write(prefixData, data)
}

func (b *I2CBus) write(prefix byte, p []byte) error {
	b.buf = append(b.buf[:0], prefix)
	b.buf = append(b.buf, p...)
	n, err := b.w.Write(b.buf)
	if err != nil {
		return err
	}
	if n != len(b.buf) {
		return fmt.Errorf("short write %d of %d: %w", n, len(b.buf), io.ErrShortWrite)
	}
	return nil
}

// ErrGeometry is returned for panel sizes the controller cannot address.
var ErrGeometry = errors.New("ssd1306: unsupported geometry")
