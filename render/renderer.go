package render

import (
	"fmt"
	"image"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/fonts"
	"github.com/automoto/joyplat/game"
	"github.com/automoto/joyplat/shared/gamemath"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer paints a game state. It holds only static drawing parameters.
type Renderer struct {
	Face        font.Face
	ScoreAnchor image.Point // top-left of the score text
	ScoreFormat string
	Sprite      Sprite
	SpriteKey   bool // sprite value that is not painted
}

// NewRenderer builds a renderer from the global HUD configuration.
func NewRenderer() *Renderer {
	r := &Renderer{Sprite: PlayerSprite}
	r.ApplyHUD()
	return r
}

// ApplyHUD takes the face, score anchor and format from the global HUD
// configuration. The sprite is left alone.
func (r *Renderer) ApplyHUD() {
	r.Face = fonts.HUD.Get()
	r.ScoreAnchor = image.Pt(cfg.HUD.ScoreX, cfg.HUD.ScoreY)
	r.ScoreFormat = cfg.HUD.Format
}

// Render clears fb and draws platforms, coins, the player and the score,
// in that order.
func (r *Renderer) Render(l *game.Level, s game.State, fb *Framebuffer) {
	fb.Clear()

	for _, p := range l.Platforms {
		fillRect(fb, p)
	}
	for _, c := range s.Coins {
		fillRect(fb, c)
	}

	fb.Blit(r.Sprite, int(s.Player.X), int(s.Player.Y), r.SpriteKey)

	r.drawText(fb, r.ScoreText(s.Score))
}

// ScoreText formats the HUD line for a score.
func (r *Renderer) ScoreText(score int) string {
	return fmt.Sprintf(r.ScoreFormat, score)
}

// TextBounds returns the pixel box the score text may touch.
func (r *Renderer) TextBounds(text string) image.Rectangle {
	b, _ := font.BoundString(r.Face, text)
	dot := r.dot()
	return image.Rect(
		(dot.X + b.Min.X).Floor(), (dot.Y + b.Min.Y).Floor(),
		(dot.X + b.Max.X).Ceil(), (dot.Y + b.Max.Y).Ceil(),
	)
}

func (r *Renderer) dot() fixed.Point26_6 {
	ascent := r.Face.Metrics().Ascent.Ceil()
	return fixed.P(r.ScoreAnchor.X, r.ScoreAnchor.Y+ascent)
}

func (r *Renderer) drawText(fb *Framebuffer, text string) {
	d := font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(On),
		Face: r.Face,
		Dot:  r.dot(),
	}
	d.DrawString(text)
}

func fillRect(fb *Framebuffer, rect gamemath.Rect) {
	fb.FillRect(int(rect.X), int(rect.Y), int(rect.W), int(rect.H), true)
}
