package game

// MaxReshuffleAttempts bounds the reshuffle loop. With 5 colors on a 6x6
// board the chance of 50 consecutive dead boards is negligible; after the cap
// the last generated board is accepted as-is.
const MaxReshuffleAttempts = 50

// Collapse compacts every column downward: non-empty cells keep their
// relative top-to-bottom order and empty cells bubble to the top. A single
// upward scan per column with a write pointer at the bottom row touches each
// cell at most once.
func Collapse(g *Grid) {
	for col := 0; col < g.cols; col++ {
		write := g.rows - 1
		for row := g.rows - 1; row >= 0; row-- {
			c := g.At(P(row, col))
			if c == Empty {
				continue
			}
			if write != row {
				g.Set(P(write, col), c)
			}
			write--
		}
		for ; write >= 0; write-- {
			g.Set(P(write, col), Empty)
		}
	}
}

// FillEmpty draws a fresh uniform-random color into every empty cell.
func FillEmpty(g *Grid) {
	for i, c := range g.cells {
		if c == Empty {
			g.cells[i] = g.randomColor()
		}
	}
}

// Reshuffle regenerates the entire grid until a board with an available move
// is found, capped at MaxReshuffleAttempts. Returns the number of attempts
// made. The grid is always fully populated afterwards.
func Reshuffle(g *Grid) int {
	attempts := 0
	for attempts < MaxReshuffleAttempts {
		g.Randomize()
		attempts++
		if HasAvailableMove(g) {
			break
		}
	}
	return attempts
}

// Refill runs the two-phase refill after a clear: collapse, then fill, then
// the move guard. Returns true if the guard had to reshuffle the board —
// a board-reset event the caller should surface to the player.
func Refill(g *Grid) bool {
	Collapse(g)
	FillEmpty(g)
	if HasAvailableMove(g) {
		return false
	}
	Reshuffle(g)
	return true
}
