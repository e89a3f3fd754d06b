// Package game holds the platformer rules: player movement, gravity,
// platform landing and coin pickup. Everything here is a pure function of
// its inputs; hardware and timing live in the driver.
package game

import cfg "github.com/automoto/joyplat/config"

// Params are the fixed constants of a running game.
type Params struct {
	Width  float64 // play field, equal to the display size
	Height float64

	PlayerSize   float64
	Speed        float64
	Gravity      float64
	JumpImpulse  float64
	MaxFallSpeed float64 // 0 = unbounded

	CoinWidth  float64
	CoinHeight float64
	Reward     int

	SpawnX float64
	SpawnY float64
}

// ParamsFromConfig reads the global configuration.
func ParamsFromConfig() Params {
	return Params{
		Width:        float64(cfg.Display.Width),
		Height:       float64(cfg.Display.Height),
		PlayerSize:   cfg.Player.Size,
		Speed:        cfg.Player.Speed,
		Gravity:      cfg.Physics.Gravity,
		JumpImpulse:  cfg.Physics.JumpImpulse,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		CoinWidth:    cfg.Coin.Width,
		CoinHeight:   cfg.Coin.Height,
		Reward:       cfg.Coin.Reward,
		SpawnX:       cfg.Player.SpawnX,
		SpawnY:       cfg.Player.SpawnY,
	}
}
