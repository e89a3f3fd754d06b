package config

import "time"

// AxisConfig holds the classification parameters for one joystick axis.
// A raw value below Center-Threshold is a negative intent, above
// Center+Threshold a positive one; everything in between is neutral.
type AxisConfig struct {
	Channel   int `yaml:"channel"`
	Center    int `yaml:"center"`
	Threshold int `yaml:"threshold"`
}

// InputConfig holds the analog stick mapping
type InputConfig struct {
	SensorMax int        `yaml:"sensor_max"` // full-scale raw reading
	X         AxisConfig `yaml:"x"`
	Y         AxisConfig `yaml:"y"` // negative = up (jump), positive = down
}

// IndicatorConfig names the output line for each direction.
type IndicatorConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// JoystickConfig overrides the stick calibration and the frame delay in
// joystick mode. Zero fields keep the values from Input and Loop.
type JoystickConfig struct {
	Center     int           `yaml:"center"`    // applied to both axes
	Threshold  int           `yaml:"threshold"` // applied to both axes
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// Input is the global input configuration
var Input InputConfig

// Indicator is the global indicator wiring
var Indicator IndicatorConfig

// Joystick holds the joystick mode overrides
var Joystick JoystickConfig

// JoystickInput returns Input with the joystick overrides applied.
func JoystickInput() InputConfig {
	in := Input
	for _, a := range []*AxisConfig{&in.X, &in.Y} {
		if Joystick.Center > 0 {
			a.Center = Joystick.Center
		}
		if Joystick.Threshold > 0 {
			a.Threshold = Joystick.Threshold
		}
	}
	return in
}

// JoystickFrameDelay returns the frame delay for joystick mode.
func JoystickFrameDelay() time.Duration {
	if Joystick.FrameDelay > 0 {
		return Joystick.FrameDelay
	}
	return Loop.FrameDelay
}

func resetInput() {
	// 12-bit ADC. The deadband reproduces cut points 2000 and 3000 on both axes.
	Input = InputConfig{
		SensorMax: 4095,
		X:         AxisConfig{Channel: 0, Center: 2500, Threshold: 500},
		Y:         AxisConfig{Channel: 1, Center: 2500, Threshold: 500},
	}

	Indicator = IndicatorConfig{
		Up:    "GPIO25",
		Down:  "GPIO26",
		Left:  "GPIO27",
		Right: "GPIO4",
	}

	Joystick = JoystickConfig{}
}
