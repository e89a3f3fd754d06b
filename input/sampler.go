package input

import (
	"fmt"

	cfg "github.com/automoto/joyplat/config"
)

// Sample is one raw reading of both axes.
type Sample struct {
	X, Y int
}

// Sensor reads a raw value from an analog channel. Any integer is accepted;
// out-of-range values are classified like any other.
type Sensor interface {
	ReadAxis(channel int) (int, error)
}

// Axis is a symmetric deadband around Center.
type Axis struct {
	Channel   int
	Center    int
	Threshold int
}

// classify returns -1, 0 or 1. The comparisons are strict, so the band
// edges themselves are neutral.
func (a Axis) classify(v int) int {
	switch {
	case v < a.Center-a.Threshold:
		return -1
	case v > a.Center+a.Threshold:
		return 1
	}
	return 0
}

// Classifier maps samples to intents. The zero value treats every sample
// as a deflection away from 0.
type Classifier struct {
	X Axis
	Y Axis
}

// NewClassifier builds a classifier from the global input configuration.
func NewClassifier() Classifier {
	return ClassifierFrom(cfg.Input)
}

// NewJoystickClassifier is NewClassifier with the joystick mode overrides.
func NewJoystickClassifier() Classifier {
	return ClassifierFrom(cfg.JoystickInput())
}

func ClassifierFrom(c cfg.InputConfig) Classifier {
	return Classifier{
		X: Axis(c.X),
		Y: Axis(c.Y),
	}
}

// Classify is total: every sample maps to exactly one intent per axis.
func (c Classifier) Classify(s Sample) Intent {
	var in Intent
	switch c.X.classify(s.X) {
	case -1:
		in.X = Left
	case 1:
		in.X = Right
	}
	switch c.Y.classify(s.Y) {
	case -1:
		in.Y = Up
	case 1:
		in.Y = Down
	}
	return in
}

// Sampler reads both axes from a Sensor and classifies them.
type Sampler struct {
	sensor     Sensor
	classifier Classifier
}

func NewSampler(sensor Sensor, classifier Classifier) *Sampler {
	return &Sampler{sensor: sensor, classifier: classifier}
}

// Sample reads X then Y. A failed read is returned with the channel that
// failed; no intent is produced for that frame.
func (s *Sampler) Sample() (Sample, Intent, error) {
	x, err := s.sensor.ReadAxis(s.classifier.X.Channel)
	if err != nil {
		return Sample{}, Neutral, fmt.Errorf("read x axis (channel %d): %w", s.classifier.X.Channel, err)
	}
	y, err := s.sensor.ReadAxis(s.classifier.Y.Channel)
	if err != nil {
		return Sample{}, Neutral, fmt.Errorf("read y axis (channel %d): %w", s.classifier.Y.Channel, err)
	}
	sample := Sample{X: x, Y: y}
	return sample, s.classifier.Classify(sample), nil
}

// Classifier returns the thresholds in use.
func (s *Sampler) Classifier() Classifier {
	return s.classifier
}

// SetClassifier replaces the thresholds used from the next Sample on.
func (s *Sampler) SetClassifier(c Classifier) {
	s.classifier = c
}
