package chainpop

import (
	"fmt"

	"github.com/avasilyev/chainpop/internal/core"
	"github.com/avasilyev/chainpop/internal/game"
)

const (
	tileWidth = 4 // columns per tile, including spacing
	hudHeight = 3 // title line, separator, time bar
)

// tileColors maps tile palette indices to screen colors. Index 0 (Empty)
// renders in the default color.
var tileColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorWhite,
}

// colorFor returns the screen color for a tile.
func colorFor(c game.Color) core.Color {
	if int(c) < len(tileColors) {
		return tileColors[c]
	}
	return core.ColorWhite
}

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	st := g.round.State()
	switch {
	case st.Ended:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.reshuffleTick > 0:
		dst.DrawTextCentered(g.boardTop(dst)-1, "No moves left - board reshuffled")
	}
}

// renderHUD draws the title line and time bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.round.State()
	best := g.round.Best()

	hud := fmt.Sprintf(" %s - Score: %d  x%d  Best: %d", g.Title(), st.Score, st.Chain, best.BestScore)
	dst.DrawText(0, 0, hud)
	if g.flashTicks > 0 {
		flash := fmt.Sprintf("+%d tiles!", g.lastCommit.Length)
		dst.DrawTextColored(dst.Width()-len(flash)-1, 0, flash, core.ColorBrightYellow)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')

	g.renderTimeBar(dst, 2)
}

// renderTimeBar draws the remaining-time gauge, scaled against the highest
// time seen this round so bonus seconds visibly extend the bar.
func (g *Game) renderTimeBar(dst *core.Screen, y int) {
	st := g.round.State()
	barWidth := dst.Width() - 14
	if barWidth < 10 {
		barWidth = 10
	}

	filled := 0
	if st.MaxTimeForBar > 0 {
		filled = barWidth * st.TimeLeft / st.MaxTimeForBar
	}
	if filled > barWidth {
		filled = barWidth
	}

	barColor := core.ColorBrightGreen
	if st.TimeLeft <= 10 {
		barColor = core.ColorBrightRed
	}

	dst.DrawText(1, y, "Time [")
	for i := 0; i < barWidth; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		dst.SetCell(7+i, y, r, barColor)
	}
	dst.DrawText(7+barWidth, y, fmt.Sprintf("] %3ds", st.TimeLeft))
}

// boardTop returns the y coordinate of the board's first row.
func (g *Game) boardTop(dst *core.Screen) int {
	rc := g.round.Config()
	top := hudHeight + (dst.Height()-hudHeight-rc.Rows)/2
	if top < hudHeight+1 {
		top = hudHeight + 1
	}
	return top
}

// renderBoard draws the tile grid with the selection path and cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	rc := g.round.Config()
	grid := g.round.Grid()
	sel := g.round.Selection()

	left := (dst.Width() - rc.Cols*tileWidth) / 2
	top := g.boardTop(dst)

	onPath := make(map[game.Position]bool, sel.Len())
	for _, p := range sel.Path() {
		onPath[p] = true
	}

	for row := 0; row < rc.Rows; row++ {
		for col := 0; col < rc.Cols; col++ {
			p := game.P(row, col)
			x := left + col*tileWidth + 1
			y := top + row

			c := grid.At(p)
			tile := '●'
			if c == game.Empty {
				tile = '·'
			}
			if onPath[p] {
				tile = '◉'
			}
			dst.SetCell(x, y, tile, colorFor(c))

			if p == g.cursor {
				dst.SetCell(x-1, y, '[', core.ColorWhite)
				dst.SetCell(x+1, y, ']', core.ColorWhite)
			}
		}
	}

	// Footer hint under the board.
	hint := "Space: pick/pop  Arrows: drag  Esc: cancel"
	if sel.Active() {
		hint = fmt.Sprintf("Path: %d tiles, %d turns  (min %d to pop)", sel.Len(), sel.Turns(), game.MinPathLen)
	}
	dst.DrawTextCentered(top+rc.Rows+1, hint)
}

// renderGameOver draws the final overlay with the top-scores table.
func (g *Game) renderGameOver(dst *core.Screen) {
	st := g.round.State()

	lines := []string{
		"Round Over",
		"",
		fmt.Sprintf("Score: %d   Longest pop: %d", st.Score, st.MaxChain),
	}
	if best := g.round.Best(); best.BestScore > 0 {
		lines = append(lines, fmt.Sprintf("Best:  %d   Best pop:    %d", best.BestScore, best.BestChain))
	}
	if len(g.topScores) > 0 {
		lines = append(lines, "", "Top scores:")
		for i, e := range g.topScores {
			lines = append(lines, fmt.Sprintf("%d. %-12s %6d", i+1, e.Name, e.Score))
		}
	}
	lines = append(lines, "", "Press R to restart, Q to quit")

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	if boxY < hudHeight {
		boxY = hudHeight
	}

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+1+i, l)
	}
}

// renderOverlay draws a small centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
