package game

import "github.com/automoto/joyplat/shared/gamemath"

// Player is the mutable player state, advanced once per tick.
type Player struct {
	X, Y      float64
	VelocityY float64
	Airborne  bool
}

// State is everything that changes while playing. A State is a value:
// Tick never modifies the State it is given.
type State struct {
	Player Player
	Coins  []gamemath.Rect // still collectible
	Score  int
}

// NewState returns the starting state for a level.
func NewState(l *Level) State {
	return State{
		Player: Player{X: l.Spawn.X, Y: l.Spawn.Y},
		Coins:  append([]gamemath.Rect(nil), l.Coins...),
	}
}

// Box returns the player's bounding box for a given size.
func (p Player) Box(size float64) gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// InBounds reports whether the player lies inside the play field.
func (l *Level) InBounds(p Player) bool {
	field := gamemath.Rect{W: l.Params.Width, H: l.Params.Height}
	return p.Box(l.Params.PlayerSize).Contains(field)
}
