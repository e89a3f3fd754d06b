package ssd1306

import (
	"fmt"

	cfg "github.com/automoto/joyplat/config"
)

const pageHeight = 8

// Controller commands.
const (
	cmdDisplayOff    = 0xAE
	cmdDisplayOn     = 0xAF
	cmdClockDiv      = 0xD5
	cmdMultiplex     = 0xA8
	cmdDisplayOffset = 0xD3
	cmdStartLine     = 0x40
	cmdChargePump    = 0x8D
	cmdMemoryMode    = 0x20
	cmdColumnAddr    = 0x21
	cmdPageAddr      = 0x22
	cmdSegRemapOff   = 0xA0
	cmdSegRemapOn    = 0xA1
	cmdComScanInc    = 0xC0
	cmdComScanDec    = 0xC8
	cmdComPins       = 0xDA
	cmdContrast      = 0x81
	cmdPrecharge     = 0xD9
	cmdVcomDetect    = 0xDB
	cmdResume        = 0xA4
	cmdEntireOn      = 0xA5
	cmdNormal        = 0xA6
	cmdInvert        = 0xA7
	cmdPageStart     = 0xB0
	cmdLowColumn     = 0x00
	cmdHighColumn    = 0x10
)

// Memory addressing modes.
const (
	modeHorizontal = 0x00
	modeVertical   = 0x01
	modePage       = 0x02
)

// Source is a 1-bit image the panel can copy from.
type Source interface {
	Pixel(x, y int) bool
}

// Opts describes the attached panel.
type Opts struct {
	Width        int
	Height       int
	ColumnOffset int
	Contrast     byte
}

// DefaultOpts is a 128×64 SSD1306.
var DefaultOpts = Opts{Width: 128, Height: 64, Contrast: 0xCF}

// OptsFromConfig reads the global display configuration.
func OptsFromConfig() Opts {
	return Opts{
		Width:        cfg.Display.Width,
		Height:       cfg.Display.Height,
		ColumnOffset: cfg.Display.ColumnOffset,
		Contrast:     cfg.Display.Contrast,
	}
}

// Panel writes framebuffers to the controller page by page.
type Panel struct {
	bus  Bus
	opts Opts
	page []byte
}

// NewPanel checks the geometry and returns a panel. It does not talk to
// the bus; call Init once the hardware is powered.
func NewPanel(bus Bus, opts Opts) (*Panel, error) {
	switch {
	case opts.Width <= 0 || opts.Width+opts.ColumnOffset > 132:
		return nil, fmt.Errorf("%w: width %d with column offset %d", ErrGeometry, opts.Width, opts.ColumnOffset)
	case opts.Height <= 0 || opts.Height > 64 || opts.Height%pageHeight != 0:
		return nil, fmt.Errorf("%w: height %d", ErrGeometry, opts.Height)
	case opts.ColumnOffset < 0:
		return nil, fmt.Errorf("%w: column offset %d", ErrGeometry, opts.ColumnOffset)
	}
	return &Panel{
		bus:  bus,
		opts: opts,
		page: make([]byte, opts.Width),
	}, nil
}

// Pages returns the number of 8-row pages.
func (p *Panel) Pages() int {
	return p.opts.Height / pageHeight
}

// InitSequence returns the power-on command stream for the panel.
func (p *Panel) InitSequence() []byte {
	comPins := byte(0x12)
	if p.opts.Height == 32 && p.opts.Width == 128 {
		comPins = 0x02
	}
	return []byte{
		cmdDisplayOff,
		cmdClockDiv, 0x80,
		cmdMultiplex, byte(p.opts.Height - 1),
		cmdDisplayOffset, 0x00,
		cmdStartLine | 0x00,
		cmdChargePump, 0x14,
		cmdMemoryMode, modePage,
		cmdSegRemapOn,
		cmdComScanDec,
		cmdComPins, comPins,
		cmdContrast, p.opts.Contrast,
		cmdPrecharge, 0xF1,
		cmdVcomDetect, 0x30,
		cmdResume,
		cmdNormal,
		cmdDisplayOn,
	}
}

// Init sends the power-on sequence.
func (p *Panel) Init() error {
	if err := p.bus.WriteControl(p.InitSequence()); err != nil {
		return fmt.Errorf("ssd1306: init: %w", err)
	}
	return nil
}

// Flush copies src to the panel. Pages are sent in order and the first
// failed transfer aborts the flush.
func (p *Panel) Flush(src Source) error {
	col := p.opts.ColumnOffset
	for page := 0; page < p.Pages(); page++ {
		addr := []byte{
			cmdPageStart | byte(page),
			cmdLowColumn | byte(col&0x0F),
			cmdHighColumn | byte(col>>4),
		}
		if err := p.bus.WriteControl(addr); err != nil {
			return fmt.Errorf("ssd1306: page %d address: %w", page, err)
		}
		p.packPage(src, page)
		if err := p.bus.WriteData(p.page); err != nil {
			return fmt.Errorf("ssd1306: page %d data: %w", page, err)
		}
	}
	return nil
}

// packPage fills p.page with one byte per column for the given page.
func (p *Panel) packPage(src Source, page int) {
	top := page * pageHeight
	for x := range p.page {
		var b byte
		for bit := 0; bit < pageHeight; bit++ {
			if src.Pixel(x, top+bit) {
				b |= 1 << bit
			}
		}
		p.page[x] = b
	}
}

// SetContrast changes the panel brightness.
func (p *Panel) SetContrast(level byte) error {
	if err := p.bus.WriteControl([]byte{cmdContrast, level}); err != nil {
		return fmt.Errorf("ssd1306: contrast: %w", err)
	}
	p.opts.Contrast = level
	return nil
}

// Invert swaps lit and unlit pixels in hardware.
func (p *Panel) Invert(on bool) error {
	cmd := byte(cmdNormal)
	if on {
		cmd = cmdInvert
	}
	if err := p.bus.WriteControl([]byte{cmd}); err != nil {
		return fmt.Errorf("ssd1306: invert: %w", err)
	}
	return nil
}

// Halt blanks the panel.
func (p *Panel) Halt() error {
	if err := p.bus.WriteControl([]byte{cmdDisplayOff}); err != nil {
		return fmt.Errorf("ssd1306: halt: %w", err)
	}
	return nil
}
