package render

import (
	"image"
	"testing"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/game"
	"github.com/automoto/joyplat/shared/gamemath"
	"github.com/automoto/joyplat/shared/leveldata"
	"golang.org/x/image/font/basicfont"
)

func testParams() game.Params {
	return game.Params{
		Width:       128,
		Height:      64,
		PlayerSize:  8,
		Speed:       2,
		Gravity:     1,
		JumpImpulse: 5,
		CoinWidth:   4,
		CoinHeight:  4,
		Reward:      10,
		SpawnX:      64,
		SpawnY:      32,
	}
}

func testRenderer() *Renderer {
	return &Renderer{
		Face:        basicfont.Face7x13,
		ScoreFormat: "Score: %d",
		Sprite:      PlayerSprite,
	}
}

func TestRenderEmptyLevel(t *testing.T) {
	l := game.NewLevel(&leveldata.LevelData{Name: "empty"}, testParams())
	s := game.NewState(l)
	r := testRenderer()
	fb := NewFramebuffer(128, 64)
	fb.FillRect(0, 0, 128, 64, true)

	r.Render(l, s, fb)

	sprite := image.Rect(64, 32, 72, 40)
	text := r.TextBounds(r.ScoreText(0))
	textLit := 0

	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			p := image.Pt(x, y)
			lit := fb.Pixel(x, y)
			switch {
			case p.In(sprite):
				if want := PlayerSprite.Bit(x-64, y-32); lit != want {
					t.Fatalf("sprite pixel (%d,%d) = %v, want %v", x, y, lit, want)
				}
			case p.In(text):
				if lit {
					textLit++
				}
			case lit:
				t.Fatalf("stray pixel at (%d,%d)", x, y)
			}
		}
	}
	if textLit == 0 {
		t.Fatal("score text not drawn")
	}
}

func TestRenderPlatformsAndCoins(t *testing.T) {
	l := game.NewLevel(&leveldata.LevelData{
		Name:      "boxes",
		Platforms: []gamemath.Rect{{X: 0, Y: 60, W: 128, H: 4}},
		Coins:     []gamemath.Rect{{X: 100, Y: 50}},
	}, testParams())
	s := game.NewState(l)
	fb := NewFramebuffer(128, 64)

	testRenderer().Render(l, s, fb)

	for x := 0; x < 128; x++ {
		for y := 60; y < 64; y++ {
			if !fb.Pixel(x, y) {
				t.Fatalf("platform pixel (%d,%d) not lit", x, y)
			}
		}
	}
	for y := 50; y < 54; y++ {
		for x := 100; x < 104; x++ {
			if !fb.Pixel(x, y) {
				t.Fatalf("coin pixel (%d,%d) not lit", x, y)
			}
		}
	}

	// A collected coin is no longer drawn.
	s.Coins = nil
	testRenderer().Render(l, s, fb)
	if fb.Pixel(101, 51) {
		t.Fatal("collected coin still drawn")
	}
}

func TestRenderTruncatesPlayerPosition(t *testing.T) {
	l := game.NewLevel(&leveldata.LevelData{Name: "empty"}, testParams())
	s := game.NewState(l)
	s.Player.X, s.Player.Y = 10.9, 40.5
	fb := NewFramebuffer(128, 64)

	testRenderer().Render(l, s, fb)

	// Top row of the sprite is 0x3C: columns 2..5 lit.
	if !fb.Pixel(12, 40) || fb.Pixel(11, 40) {
		t.Fatal("sprite not drawn at truncated position (10,40)")
	}
}

func TestScoreText(t *testing.T) {
	r := testRenderer()
	if got := r.ScoreText(30); got != "Score: 30" {
		t.Fatalf("ScoreText = %q", got)
	}
}

func TestApplyHUDFollowsConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Reset()
	r := NewRenderer()

	cfg.HUD.Format = "P%d"
	cfg.HUD.ScoreX, cfg.HUD.ScoreY = 10, 20
	r.ApplyHUD()

	if got := r.ScoreText(7); got != "P7" {
		t.Errorf("ScoreText = %q, want P7", got)
	}
	if r.ScoreAnchor != image.Pt(10, 20) {
		t.Errorf("ScoreAnchor = %v", r.ScoreAnchor)
	}
	if r.Sprite.Width != PlayerSprite.Width || len(r.Sprite.Pix) != len(PlayerSprite.Pix) {
		t.Error("sprite replaced")
	}
}
