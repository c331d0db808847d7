package maze

import (
	"fmt"

	"github.com/minigamehub/arcade/internal/core"
)

const (
	hudRows    = 2 // HUD line and separator
	statusRows = 2 // Message and key help
)

// layout describes how the wall lattice maps onto the screen. The lattice
// has 2N+1 columns and rows: even indices are walls and posts, odd ones
// are cell interiors.
type layout struct {
	compact bool // Two lattice rows per terminal row, drawn with half blocks
	cellW   int
	cellH   int
	originX int
	originY int
	width   int
	height  int
}

func (g *Game) computeLayout() (layout, bool) {
	n := g.grid.Size()
	availW := g.screenW
	availH := g.screenH - hudRows - statusRows

	full := layout{
		cellW:  g.cfg.View.CellWidth,
		cellH:  g.cfg.View.CellHeight,
		width:  n*(g.cfg.View.CellWidth+1) + 1,
		height: n*(g.cfg.View.CellHeight+1) + 1,
	}
	compact := layout{
		compact: true,
		cellW:   1,
		cellH:   1,
		width:   2*n + 1,
		height:  n + 1,
	}

	for _, l := range []layout{full, compact} {
		if l.width <= availW && l.height <= availH {
			l.originX = (availW - l.width) / 2
			l.originY = hudRows + (availH-l.height)/2
			return l, true
		}
	}
	return compact, false
}

// wallAt reports whether the lattice position (lx, ly) is solid.
func (g *Game) wallAt(lx, ly int) bool {
	n := g.grid.Size()
	if lx < 0 || ly < 0 || lx > 2*n || ly > 2*n {
		return false
	}
	switch {
	case lx%2 == 0 && ly%2 == 0:
		return true
	case lx%2 == 1 && ly%2 == 1:
		return false
	case lx%2 == 0:
		// Vertical wall left of cell (lx/2, ly/2)
		if lx == 2*n {
			return true
		}
		return g.grid.At(Point{X: lx / 2, Y: ly / 2}).Walls[Left]
	default:
		// Horizontal wall above cell (lx/2, ly/2)
		if ly == 2*n {
			return true
		}
		return g.grid.At(Point{X: lx / 2, Y: ly / 2}).Walls[Top]
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	g.renderHUD(dst)

	l, ok := g.computeLayout()
	if !ok {
		n := g.grid.Size()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", 2*n+1, n+1+hudRows+statusRows))
		return
	}

	if l.compact {
		g.renderCompact(dst, l)
	} else {
		g.renderFull(dst, l)
	}

	g.renderStatus(dst)

	if g.status == StatusIdle {
		g.renderOverlay(dst, "Maze Escape", msgIdle)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze Escape — Time: %ds  Moves: %d", g.seconds, g.moves)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - statusRows
	color := core.ColorDefault
	help := "WASD move  R restart  Esc menu"
	switch g.status {
	case StatusWon:
		color = core.ColorBrightGreen
		help = "Press Enter or R to play again!"
	case StatusRunning:
		color = core.ColorCyan
		if g.cfg.Hint.Enabled {
			help = "WASD move  H hint  R restart  Esc menu"
		}
	}
	dst.DrawTextCenteredColor(y, g.Message(), color)
	dst.DrawTextCenteredColor(y+1, help, core.ColorGray)
}

// markers returns the overlay glyphs keyed by maze cell, in draw order.
func (g *Game) markers() map[Point]core.Cell {
	marks := make(map[Point]core.Cell)
	for _, p := range g.trail {
		marks[p] = core.Cell{Rune: '·', Color: core.ColorGray}
	}
	if g.showHint && g.status == StatusRunning {
		for _, p := range g.grid.Solve(g.player, g.exit) {
			marks[p] = core.Cell{Rune: '*', Color: core.ColorYellow}
		}
	}
	marks[g.exit] = core.Cell{Rune: 'E', Color: core.ColorBrightGreen}
	marks[g.player] = core.Cell{Rune: '@', Color: core.ColorBrightBlue}
	return marks
}

// renderFull draws every lattice column and row at configured widths.
func (g *Game) renderFull(dst *core.Screen, l layout) {
	n := g.grid.Size()
	span := func(i, cell int) (start, size int) {
		// Lattice index i -> screen offset and extent
		start = (i/2)*(cell+1) + i%2
		if i%2 == 0 {
			return start, 1
		}
		return start, cell
	}

	for ly := 0; ly <= 2*n; ly++ {
		sy, h := span(ly, l.cellH)
		for lx := 0; lx <= 2*n; lx++ {
			if !g.wallAt(lx, ly) {
				continue
			}
			sx, w := span(lx, l.cellW)
			dst.DrawRectColor(core.NewRect(l.originX+sx, l.originY+sy, w, h), '█', core.ColorGray)
		}
	}

	for p, c := range g.markers() {
		sx, w := span(2*p.X+1, l.cellW)
		sy, h := span(2*p.Y+1, l.cellH)
		dst.SetColor(l.originX+sx+w/2, l.originY+sy+h/2, c.Rune, c.Color)
	}
}

// renderCompact packs two lattice rows into each terminal row.
func (g *Game) renderCompact(dst *core.Screen, l layout) {
	n := g.grid.Size()
	for row := 0; row < l.height; row++ {
		for lx := 0; lx <= 2*n; lx++ {
			top := g.wallAt(lx, 2*row)
			bottom := g.wallAt(lx, 2*row+1)
			var r rune
			switch {
			case top && bottom:
				r = '█'
			case top:
				r = '▀'
			case bottom:
				r = '▄'
			default:
				continue
			}
			dst.SetColor(l.originX+lx, l.originY+row, r, core.ColorGray)
		}
	}

	// Cell (x, y) sits on lattice row 2y+1, the lower half of terminal row y
	for p, c := range g.markers() {
		dst.SetColor(l.originX+2*p.X+1, l.originY+p.Y, c.Rune, c.Color)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2)
}
