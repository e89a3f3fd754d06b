package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
)

// ErrUnknownCommand is returned when the emulator sees a byte it cannot
// decode as a controller command.
var ErrUnknownCommand = errors.New("ssd1306: unknown command")

// argCount maps multi-byte commands to the number of argument bytes.
var argCount = map[byte]int{
	cmdMemoryMode:    1,
	cmdColumnAddr:    2,
	cmdPageAddr:      2,
	cmdContrast:      1,
	cmdChargePump:    1,
	cmdMultiplex:     1,
	cmdDisplayOffset: 1,
	cmdClockDiv:      1,
	cmdPrecharge:     1,
	cmdComPins:       1,
	cmdVcomDetect:    1,
	0x26:             6, // horizontal scroll setup
	0x27:             6,
	0x29:             5, // vertical and horizontal scroll setup
	0x2A:             5,
	0xA3:             2, // vertical scroll area
}

// Emulator is an in-memory controller. It implements Bus by decoding the
// command stream into display RAM, so anything a Panel sends can be
// inspected or shown by a simulator.
type Emulator struct {
	mu sync.Mutex

	width  int // visible columns
	pages  int
	offset int // first visible RAM column
	ram    [][]byte

	mode      byte
	page      int
	col       int
	colStart  int
	colEnd    int
	pageStart int
	pageEnd   int

	on       bool
	inverted bool
	entireOn bool
	contrast byte

	cmd  []byte // partially received command
	need int    // argument bytes still expected
}

// NewEmulator returns a controller in its reset state for a visible area
// of width × height starting at RAM column offset.
func NewEmulator(width, height, offset int) *Emulator {
	e := &Emulator{
		width:  width,
		pages:  height / pageHeight,
		offset: offset,
	}
	e.ram = make([][]byte, e.pages)
	for i := range e.ram {
		e.ram[i] = make([]byte, width+offset)
	}
	e.reset()
	return e
}

func (e *Emulator) reset() {
	e.mode = modePage
	e.page, e.col = 0, 0
	e.colStart, e.colEnd = 0, e.width+e.offset-1
	e.pageStart, e.pageEnd = 0, e.pages-1
	e.contrast = 0x7F
}

func (e *Emulator) WriteControl(cmd []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, b := range cmd {
		if e.need > 0 {
			e.cmd = append(e.cmd, b)
			e.need--
			if e.need == 0 {
				e.exec(e.cmd)
			}
			continue
		}
		if n, ok := argCount[b]; ok {
			e.cmd = append(e.cmd[:0], b)
			e.need = n
			continue
		}
		if err := e.single(b); err != nil {
			return err
		}
	}
	return nil
}

// single executes a command with no argument bytes.
func (e *Emulator) single(b byte) error {
	switch {
	case b == cmdDisplayOff:
		e.on = false
	case b == cmdDisplayOn:
		e.on = true
	case b == cmdNormal:
		e.inverted = false
	case b == cmdInvert:
		e.inverted = true
	case b == cmdResume:
		e.entireOn = false
	case b == cmdEntireOn:
		e.entireOn = true
	case b >= cmdPageStart && b <= cmdPageStart|0x07:
		e.page = int(b&0x07) % e.pages
	case b <= 0x0F:
		e.col = e.col&0xF0 | int(b&0x0F)
	case b >= cmdHighColumn && b <= 0x1F:
		e.col = e.col&0x0F | int(b&0x0F)<<4
	case b >= cmdStartLine && b <= 0x7F,
		b == cmdSegRemapOff, b == cmdSegRemapOn,
		b == cmdComScanInc, b == cmdComScanDec,
		b == 0x2E, b == 0x2F:
		// Panel orientation, start line and scrolling do not change RAM.
	default:
		return fmt.Errorf("%w: %#02x", ErrUnknownCommand, b)
	}
	return nil
}

// exec runs a complete command with arguments.
func (e *Emulator) exec(c []byte) {
	switch c[0] {
	case cmdMemoryMode:
		e.mode = c[1] & 0x03
	case cmdColumnAddr:
		e.colStart, e.colEnd = int(c[1]), int(c[2])
		e.col = e.colStart
	case cmdPageAddr:
		e.pageStart, e.pageEnd = int(c[1]&0x07), int(c[2]&0x07)
		e.page = e.pageStart
	case cmdContrast:
		e.contrast = c[1]
	}
}

func (e *Emulator) WriteData(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rowLen := len(e.ram[0])
	for _, b := range data {
		if e.page < e.pages && e.col < rowLen {
			e.ram[e.page][e.col] = b
		}
		e.advance()
	}
	return nil
}

// advance moves the RAM pointer after a data byte.
func (e *Emulator) advance() {
	switch e.mode {
	case modeHorizontal:
		if e.col >= e.colEnd {
			e.col = e.colStart
			e.page = e.nextPage()
			return
		}
		e.col++
	case modeVertical:
		if e.page >= e.pageEnd {
			e.page = e.pageStart
			e.col = e.nextColumn()
			return
		}
		e.page++
	default:
		// Page mode wraps within the current page.
		e.col++
		if e.col >= len(e.ram[0]) {
			e.col = 0
		}
	}
}

func (e *Emulator) nextPage() int {
	if e.page >= e.pageEnd {
		return e.pageStart
	}
	return e.page + 1
}

func (e *Emulator) nextColumn() int {
	if e.col >= e.colEnd {
		return e.colStart
	}
	return e.col + 1
}

// On reports whether the display is switched on.
func (e *Emulator) On() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.on
}

// Inverted reports whether inverse video is active.
func (e *Emulator) Inverted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inverted
}

// Contrast returns the last contrast level set.
func (e *Emulator) Contrast() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contrast
}

// Pixel reports the RAM bit behind visible pixel (x, y), ignoring display
// on/off and inversion.
func (e *Emulator) Pixel(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pixel(x, y)
}

func (e *Emulator) pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= e.width || y >= e.pages*pageHeight {
		return false
	}
	return e.ram[y/pageHeight][x+e.offset]&(1<<(y%pageHeight)) != 0
}

// Image renders what the panel currently shows.
func (e *Emulator) Image() *image.Gray {
	e.mu.Lock()
	defer e.mu.Unlock()

	img := image.NewGray(image.Rect(0, 0, e.width, e.pages*pageHeight))
	if !e.on {
		return img
	}
	for y := 0; y < e.pages*pageHeight; y++ {
		for x := 0; x < e.width; x++ {
			lit := e.entireOn || e.pixel(x, y)
			if e.inverted {
				lit = !lit
			}
			if lit {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}
