// Package input turns raw joystick samples into discrete movement intents.
package input

// Horizontal is the left/right component of an Intent.
type Horizontal int8

const (
	HorizontalNeutral Horizontal = iota
	Left
	Right
)

// Vertical is the up/down component of an Intent. Up requests a jump.
type Vertical int8

const (
	VerticalNeutral Vertical = iota
	Up
	Down
)

// Intent is the classified stick position for one frame.
type Intent struct {
	X Horizontal
	Y Vertical
}

// Neutral is the intent of a centered stick.
var Neutral = Intent{}

// Jump reports whether the intent requests a jump.
func (i Intent) Jump() bool {
	return i.Y == Up
}

// Direction returns -1 for Left, 1 for Right and 0 otherwise.
func (i Intent) Direction() float64 {
	switch i.X {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "neutral"
}

func (v Vertical) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "neutral"
}

func (i Intent) String() string {
	return i.X.String() + "/" + i.Y.String()
}
