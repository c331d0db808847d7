package shooter

import (
	"fmt"

	"github.com/minigamehub/arcade/internal/core"
)

const fieldTop = 2 // HUD line and separator

var enemyGlyphs = [...]core.Cell{
	Chaser: {Rune: 'x', Color: core.ColorRed},
	Wander: {Rune: 'w', Color: core.ColorMagenta},
	Sine:   {Rune: 's', Color: core.ColorCyan},
	Fast:   {Rune: 'f', Color: core.ColorOrange},
	Boss:   {Rune: '█', Color: core.ColorBrightRed},
}

var itemGlyphs = [...]core.Cell{
	ItemHP:       {Rune: '+', Color: core.ColorGreen},
	ItemSpeed:    {Rune: '»', Color: core.ColorBrightCyan},
	ItemFireRate: {Rune: '!', Color: core.ColorOrange},
	ItemRelic:    {Rune: '◆', Color: core.ColorBrightMagenta},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	g.renderHUD(dst)

	if g.screenW < 20 || g.screenH < fieldTop+8 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderField(dst)

	switch {
	case !g.started:
		g.renderOverlay(dst, "Simple Shooting Game", "Press Enter to start", "WASD move  Arrows shoot  P pause")
	case g.world.Over():
		p := g.world.Progress()
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Level: %d  Time: %ds", p.Score, p.Level, p.Elapsed),
			"Press R to restart")
	case g.world.Choice() != ChoiceNone:
		g.renderChoice(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	p := w.Progress()
	hud := fmt.Sprintf(" Score: %d  Level: %d  HP: %.0f/%.0f  EXP: %d/%d  Time: %ds",
		p.Score, p.Level, w.Player.HP, w.Player.MaxHP, p.Exp, p.ExpToNext, p.Elapsed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// toScreen maps a canvas point into the playfield below the HUD.
func (g *Game) toScreen(x, y float64) (int, int) {
	fw := float64(g.screenW)
	fh := float64(g.screenH - fieldTop)
	sx := int(x * fw / g.world.W)
	sy := fieldTop + int(y*fh/g.world.H)
	return sx, sy
}

func (g *Game) renderField(dst *core.Screen) {
	w := g.world
	fieldW := float64(g.screenW)

	for i := range w.Items {
		it := &w.Items[i]
		x, y := g.toScreen(it.Box().Center())
		c := itemGlyphs[it.Kind]
		dst.SetColor(x, y, c.Rune, c.Color)
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		x, y := g.toScreen(e.Center())
		c := enemyGlyphs[e.Kind]
		if e.Kind == Boss {
			radius := int(e.W / 2 * fieldW / w.W)
			dst.DrawDisc(x, y, radius, c.Rune, c.Color)
			dst.DrawTextColor(x-2, y-max(1, radius/2)-1, "BOSS", core.ColorBrightWhite)
			continue
		}
		dst.SetColor(x, y, c.Rune, c.Color)
	}

	for i := range w.Bullets {
		b := &w.Bullets[i]
		x, y := g.toScreen(b.X, b.Y)
		dst.SetColor(x, y, '•', core.ColorYellow)
	}

	px, py := g.toScreen(w.Player.Center())
	dst.SetColor(px, py, '@', core.ColorBrightBlue)

	for i := range w.Texts {
		t := &w.Texts[i]
		if t.Alpha < 0.2 {
			continue
		}
		x, y := g.toScreen(t.X, t.Y)
		dst.DrawTextColor(x, y-1, t.Text, t.Color)
	}
}

// cardRects lays out the choice modal and its option cards. Render and
// pointer hit-testing share it so clicks land on what was drawn.
func (g *Game) cardRects(n int) (core.Rect, []core.Rect) {
	cw := max(16, min(g.screenW-6, 48))
	modal := core.NewRect(0, 0, cw+4, 5+n*4)
	modal.X = (g.screenW - modal.W) / 2
	modal.Y = max(fieldTop, (g.screenH-modal.H)/2)

	cards := make([]core.Rect, n)
	for i := range cards {
		cards[i] = core.NewRect(modal.X+2, modal.Y+3+i*4, cw, 3)
	}
	return modal, cards
}

func (g *Game) renderChoice(dst *core.Screen) {
	offers := g.world.Offers()
	modal, cards := g.cardRects(len(offers))

	title, color := "Level Up! Choose an upgrade", core.ColorBrightYellow
	if g.world.Choice() == ChoiceRelic {
		title, color = "Choose a relic", core.ColorBrightMagenta
	}

	dst.DrawRect(modal, ' ')
	dst.DrawBoxColor(modal, color)
	dst.DrawTextColor(modal.X+(modal.W-len([]rune(title)))/2, modal.Y+1, title, color)

	for i, card := range cards {
		o := offers[i]
		dst.DrawBoxColor(card, core.ColorGray)
		line := fmt.Sprintf("[%d] %s: %s", i+1, o.Title, o.Desc)
		if r := []rune(line); len(r) > card.W-2 {
			line = string(r[:card.W-2])
		}
		dst.DrawTextColor(card.X+1, card.Y+1, line, core.ColorBrightWhite)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2, line3 string) {
	w := max(len([]rune(line1)), len([]rune(line2)), len([]rune(line3))) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-7)/2, w, 7)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2)
	dst.DrawTextCenteredColor(box.Y+5, line3, core.ColorGray)
}
