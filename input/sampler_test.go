package input

import (
	"errors"
	"testing"

	cfg "github.com/automoto/joyplat/config"
)

type fakeSensor struct {
	values map[int]int
	fail   map[int]error
	reads  []int
}

func (f *fakeSensor) ReadAxis(channel int) (int, error) {
	f.reads = append(f.reads, channel)
	if err := f.fail[channel]; err != nil {
		return 0, err
	}
	return f.values[channel], nil
}

var testClassifier = Classifier{
	X: Axis{Channel: 0, Center: 2500, Threshold: 500},
	Y: Axis{Channel: 1, Center: 2500, Threshold: 500},
}

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		name string
		s    Sample
		want Intent
	}{
		{"centered", Sample{2500, 2500}, Neutral},
		{"left", Sample{1999, 2500}, Intent{X: Left}},
		{"left_edge_is_neutral", Sample{2000, 2500}, Neutral},
		{"right", Sample{3001, 2500}, Intent{X: Right}},
		{"right_edge_is_neutral", Sample{3000, 2500}, Neutral},
		{"jump", Sample{2500, 0}, Intent{Y: Up}},
		{"down", Sample{2500, 4095}, Intent{Y: Down}},
		{"diagonal", Sample{0, 0}, Intent{X: Left, Y: Up}},
		{"out_of_range_low", Sample{-50, 2500}, Intent{X: Left}},
		{"out_of_range_high", Sample{99999, 2500}, Intent{X: Right}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := testClassifier.Classify(c.s); got != c.want {
				t.Fatalf("Classify(%+v) = %v, want %v", c.s, got, c.want)
			}
		})
	}
}

func TestClassifyIsTotalAndDisjoint(t *testing.T) {
	a := testClassifier.X
	prev := -1
	for v := 0; v <= 4095; v++ {
		got := a.classify(v)
		inLeft := v < a.Center-a.Threshold
		inRight := v > a.Center+a.Threshold
		if inLeft && inRight {
			t.Fatalf("value %d is in both bands", v)
		}
		want := 0
		if inLeft {
			want = -1
		} else if inRight {
			want = 1
		}
		if got != want {
			t.Fatalf("classify(%d) = %d, want %d", v, got, want)
		}
		// Bands are ordered: once a band is left it is never re-entered.
		if got < prev {
			t.Fatalf("classification not monotonic at %d", v)
		}
		prev = got
		if again := a.classify(v); again != got {
			t.Fatalf("classify(%d) not deterministic", v)
		}
	}
}

func TestSamplerReadsBothAxes(t *testing.T) {
	sensor := &fakeSensor{values: map[int]int{0: 100, 1: 2500}}
	s := NewSampler(sensor, testClassifier)

	sample, in, err := s.Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if sample != (Sample{X: 100, Y: 2500}) {
		t.Errorf("sample = %+v", sample)
	}
	if in != (Intent{X: Left}) {
		t.Errorf("intent = %v", in)
	}
	if len(sensor.reads) != 2 || sensor.reads[0] != 0 || sensor.reads[1] != 1 {
		t.Errorf("reads = %v, want [0 1]", sensor.reads)
	}
}

func TestSamplerPropagatesReadError(t *testing.T) {
	boom := errors.New("adc timeout")
	sensor := &fakeSensor{
		values: map[int]int{0: 2500},
		fail:   map[int]error{1: boom},
	}
	s := NewSampler(sensor, testClassifier)

	_, in, err := s.Sample()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped adc error", err)
	}
	if in != Neutral {
		t.Errorf("intent on failure = %v, want neutral", in)
	}
}

func TestSetClassifierAppliesToNextSample(t *testing.T) {
	sensor := &fakeSensor{values: map[int]int{0: 1500, 1: 2500}}
	s := NewSampler(sensor, testClassifier)

	if _, in, _ := s.Sample(); in != (Intent{X: Left}) {
		t.Fatalf("intent = %v, want left", in)
	}

	wide := testClassifier
	wide.X.Threshold = 1200
	s.SetClassifier(wide)

	if _, in, _ := s.Sample(); in != Neutral {
		t.Fatalf("intent after widening = %v, want neutral", in)
	}
	if s.Classifier() != wide {
		t.Fatalf("Classifier() = %+v", s.Classifier())
	}
}

func TestJoystickClassifierUsesOverrides(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Reset()
	cfg.Joystick = cfg.JoystickConfig{Center: 512, Threshold: 150}

	c := NewJoystickClassifier()
	if c.X.Center != 512 || c.Y.Threshold != 150 {
		t.Fatalf("classifier = %+v", c)
	}
	if got := c.Classify(Sample{X: 300, Y: 700}); got != (Intent{X: Left, Y: Down}) {
		t.Fatalf("Classify = %v, want left/down", got)
	}
	if got := NewClassifier(); got.X.Center != 2500 {
		t.Fatalf("game classifier picked up joystick overrides: %+v", got)
	}
}

func TestIntentHelpers(t *testing.T) {
	if !(Intent{Y: Up}).Jump() {
		t.Error("Up should request a jump")
	}
	if (Intent{Y: Down}).Jump() {
		t.Error("Down should not request a jump")
	}
	if d := (Intent{X: Left}).Direction(); d != -1 {
		t.Errorf("Left direction = %v", d)
	}
	if d := (Intent{X: Right}).Direction(); d != 1 {
		t.Errorf("Right direction = %v", d)
	}
	if d := Neutral.Direction(); d != 0 {
		t.Errorf("neutral direction = %v", d)
	}
	if s := (Intent{X: Right, Y: Up}).String(); s != "right/up" {
		t.Errorf("String = %q", s)
	}
}
