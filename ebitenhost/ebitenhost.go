// Package ebitenhost runs a tween Driver inside an [Ebitengine] game loop.
//
// Wrap an existing game and run the wrapper:
//
//	s := tweener.NewScheduler(tweener.Config{})
//	game := &ebitenhost.Game{Driver: tweener.NewDriver(s, tweener.DriverConfig{}), Inner: myGame}
//	ebiten.RunGame(game)
//
// Tweens advance before the inner game's Update, so values set by tween
// callbacks are visible to the same frame's Update and Draw.
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tweener"
)

// FrameDelta returns the length of one Ebitengine tick in seconds. When TPS is
// synced with the display rate it assumes 60 Hz.
func FrameDelta() float64 {
	return frameDelta(ebiten.TPS())
}

func frameDelta(tps int) float64 {
	if tps <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(tps)
}

// Game is an ebiten.Game that runs one Driver frame per tick before
// delegating to Inner. A nil Inner draws nothing and lays out at the outside
// size.
type Game struct {
	Driver *tweener.Driver
	Inner  ebiten.Game

	// Overlay, when set, is drawn on top of Inner.
	Overlay *Overlay

	// Delta overrides FrameDelta when set, mainly for tests.
	Delta func() float64
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Driver != nil {
		delta := FrameDelta
		if g.Delta != nil {
			delta = g.Delta
		}
		dt := delta()
		g.Driver.Frame(dt)
		if g.Overlay != nil {
			g.Overlay.update(dt, g.Driver.Scheduler())
		}
	}
	if g.Inner != nil {
		return g.Inner.Update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Inner != nil {
		g.Inner.Draw(screen)
	}
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Inner != nil {
		return g.Inner.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// ColorScale converts a straight-alpha tween color to Ebitengine's
// premultiplied color scale.
func ColorScale(c tweener.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}
