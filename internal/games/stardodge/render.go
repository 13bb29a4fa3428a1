package stardodge

import (
	"fmt"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Visual characters for rendering
const (
	ActorChar  = '●'
	HazardChar = '█'
	PickupChar = '★'
)

// Render draws the current round. Plane y grows upward, screen rows grow
// downward.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	p := g.world.Params()
	g.world.Registry.Each(KindPickup, func(e *Entity) {
		dst.DrawDisc(g.view, e.Pos, p.PickupRadius, PickupChar, core.ColorBrightYellow)
	})
	g.world.Registry.Each(KindHazard, func(e *Entity) {
		dst.DrawDisc(g.view, e.Pos, p.HazardRadius, HazardChar, core.ColorRed)
	})
	if actor, ok := g.world.Registry.Actor(); ok {
		dst.DrawDisc(g.view, actor.Pos, p.ActorRadius, ActorChar, core.ColorBrightBlue)
	}

	hud := fmt.Sprintf(" Score: %d  Best: %d  Stars: %d ",
		g.world.Score, g.Best(), g.world.Registry.Count(KindPickup))
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
	if !g.world.ActorAlive() {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("%c %d  |  Press R to restart", PickupChar, g.world.Score))
	}
}
