package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/tweener"
)

// Overlay prints FPS, TPS and scheduler occupancy in the top-left corner of
// the screen. The text is refreshed about twice a second.
type Overlay struct {
	elapsed float64
	text    string
}

func (o *Overlay) update(dt float64, s *tweener.Scheduler) {
	o.elapsed += dt
	if o.elapsed < 0.5 && o.text != "" {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), s.Stats())
}

// Draw prints the last refreshed text onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}

// Text returns the text the overlay currently shows.
func (o *Overlay) Text() string { return o.text }

func overlayText(fps, tps float64, st tweener.Stats) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ntweens: %d/%d\nplaying: %d\ntokens: %d",
		fps, tps, st.Slots, st.SlotCapacity, st.Registrations, st.Tokens)
}
