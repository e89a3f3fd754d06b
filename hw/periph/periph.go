// Package periph connects the console to Linux hardware through periph.io:
// an ADS1115 for the stick, GPIO lines for the indicators and the display
// on the same I²C bus.
package periph

import (
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/indicator"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

// ErrNoPin is returned when an indicator pin name is unknown to the host.
var ErrNoPin = errors.New("gpio pin not found")

// Full-scale reading of the ADS1115 in single-ended mode.
const adsRawMax = 32767

// Board is the opened hardware. Close releases it.
type Board struct {
	bus   i2c.BusCloser
	adc   *ads1x15.Dev
	pins  map[int]ads1x15.PinADC
	lines [indicator.LineCount]gpio.PinIO

	Display ssd1306.Bus
}

// Open initialises the host drivers and claims the bus, ADC channels and
// indicator pins named in the configuration.
func Open() (*Board, error) {
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	log.Printf("Loaded %d host drivers", len(state.Loaded))

	bus, err := i2creg.Open(cfg.Display.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", cfg.Display.Bus, err)
	}
	b := &Board{
		bus:     bus,
		pins:    make(map[int]ads1x15.PinADC),
		Display: ssd1306.NewI2CBus(&i2c.Dev{Bus: bus, Addr: cfg.Display.Address}),
	}

	if err := b.openADC(); err != nil {
		b.Close()
		return nil, err
	}
	if err := b.openLines(); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *Board) openADC() error {
	adc, err := ads1x15.NewADS1115(b.bus, &ads1x15.DefaultOpts)
	if err != nil {
		return fmt.Errorf("open ads1115: %w", err)
	}
	b.adc = adc

	for _, a := range []cfg.AxisConfig{cfg.Input.X, cfg.Input.Y} {
		ch, err := channel(a.Channel)
		if err != nil {
			return err
		}
		pin, err := adc.PinForChannel(ch, 5*physic.Volt, 50*physic.Hertz, ads1x15.BestQuality)
		if err != nil {
			return fmt.Errorf("ads1115 channel %d: %w", a.Channel, err)
		}
		b.pins[a.Channel] = pin
	}
	return nil
}

func channel(n int) (ads1x15.Channel, error) {
	switch n {
	case 0:
		return ads1x15.Channel0, nil
	case 1:
		return ads1x15.Channel1, nil
	case 2:
		return ads1x15.Channel2, nil
	case 3:
		return ads1x15.Channel3, nil
	}
	return 0, fmt.Errorf("ads1115 has no channel %d", n)
}

func (b *Board) openLines() error {
	names := [indicator.LineCount]string{
		indicator.Up:    cfg.Indicator.Up,
		indicator.Down:  cfg.Indicator.Down,
		indicator.Left:  cfg.Indicator.Left,
		indicator.Right: cfg.Indicator.Right,
	}
	for line, name := range names {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return fmt.Errorf("%w: %s (%s indicator)", ErrNoPin, name, indicator.Line(line))
		}
		if err := pin.Out(gpio.Low); err != nil {
			return fmt.Errorf("%s indicator on %s: %w", indicator.Line(line), name, err)
		}
		b.lines[line] = pin
	}
	return nil
}

// ReadAxis implements input.Sensor, scaling the ADC reading to the
// configured sensor range.
func (b *Board) ReadAxis(ch int) (int, error) {
	pin, ok := b.pins[ch]
	if !ok {
		return 0, fmt.Errorf("channel %d not opened", ch)
	}
	s, err := pin.Read()
	if err != nil {
		return 0, err
	}
	return scale(s, cfg.Input.SensorMax), nil
}

func scale(s analog.Sample, max int) int {
	raw := s.Raw
	if raw < 0 {
		raw = 0
	}
	if raw > adsRawMax {
		raw = adsRawMax
	}
	return int(int64(raw) * int64(max) / adsRawMax)
}

// Set implements indicator.Output.
func (b *Board) Set(line indicator.Line, on bool) error {
	if line < 0 || line >= indicator.LineCount || b.lines[line] == nil {
		return fmt.Errorf("no pin for %s indicator", line)
	}
	return b.lines[line].Out(gpio.Level(on))
}

// Close turns the indicators off and releases the bus.
func (b *Board) Close() error {
	var errs []error
	for _, pin := range b.lines {
		if pin != nil {
			errs = append(errs, pin.Out(gpio.Low))
		}
	}
	for _, pin := range b.pins {
		errs = append(errs, pin.Halt())
	}
	if b.adc != nil {
		errs = append(errs, b.adc.Halt())
	}
	errs = append(errs, b.bus.Close())
	return errors.Join(errs...)
}
