package game

import (
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/shared/gamemath"
)

// Events describes what happened during one tick.
type Events struct {
	Jumped    bool
	Landed    bool
	Platform  int // index of the platform landed on, -1 if none
	Collected []gamemath.Rect
}

// Tick advances s by one frame under intent in and returns the new state.
func Tick(l *Level, s State, in input.Intent) State {
	next, _ := Step(l, s, in)
	return next
}

// Step is Tick that also reports the events of the frame.
func Step(l *Level, s State, in input.Intent) (State, Events) {
	p := l.Params
	pl := s.Player
	ev := Events{Platform: -1}

	pl.X += p.Speed * in.Direction()

	if in.Jump() && !pl.Airborne {
		pl.VelocityY = -p.JumpImpulse
		pl.Airborne = true
		ev.Jumped = true
	}

	pl.VelocityY = gamemath.ClampFallSpeed(pl.VelocityY+p.Gravity, p.MaxFallSpeed)
	pl.Y += pl.VelocityY

	pl.X = gamemath.Clamp(pl.X, 0, p.Width-p.PlayerSize)
	pl.Y = gamemath.Clamp(pl.Y, 0, p.Height-p.PlayerSize)

	if pl.VelocityY > 0 {
		if i := l.landingPlatform(pl.Box(p.PlayerSize)); i >= 0 {
			// Platforms closer to the top than the player is tall would snap
			// it above the field.
			pl.Y = gamemath.Clamp(l.Platforms[i].Y-p.PlayerSize, 0, p.Height-p.PlayerSize)
			pl.VelocityY = 0
			pl.Airborne = false
			ev.Landed = true
			ev.Platform = i
		}
	}

	next := State{Player: pl, Coins: s.Coins, Score: s.Score}
	next.Coins, ev.Collected = collectCoins(pl.Box(p.PlayerSize), s.Coins)
	next.Score += p.Reward * len(ev.Collected)

	return next, ev
}

// landingPlatform returns the platform whose top band contains the bottom
// edge of box while overlapping it horizontally. All platforms are tested
// against the same box and the last match in level order wins.
func (l *Level) landingPlatform(box gamemath.Rect) int {
	bottom := box.Bottom()
	match := -1
	for _, i := range l.platformCandidates(box) {
		plat := l.Platforms[i]
		if bottom >= plat.Y && bottom <= plat.Bottom() && box.OverlapsX(plat) {
			match = i
		}
	}
	return match
}

// collectCoins splits coins into those left and those touched by box. The
// input slice is never modified.
func collectCoins(box gamemath.Rect, coins []gamemath.Rect) (left, taken []gamemath.Rect) {
	for _, c := range coins {
		if box.Overlaps(c) {
			taken = append(taken, c)
		}
	}
	if len(taken) == 0 {
		return coins, nil
	}

	left = make([]gamemath.Rect, 0, len(coins)-len(taken))
	for _, c := range coins {
		if !box.Overlaps(c) {
			left = append(left, c)
		}
	}
	return left, taken
}
