// Package game implements the ChainPop engine: the board model, path
// selection, scoring and round orchestration. It contains no platform
// dependencies (especially no Bubble Tea) so the rules stay pure and testable.
package game

import (
	"fmt"
	"math/rand"
)

// Color is a tile color. Zero means the cell is empty; empty cells exist only
// transiently between a clear and a refill.
type Color uint8

// Empty marks a cleared cell awaiting refill.
const Empty Color = 0

// Position is a 0-indexed (row, col) cell address.
type Position struct {
	Row, Col int
}

// P is shorthand for constructing a Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Adjacent returns true if q is a 4-directional neighbor of p.
func (p Position) Adjacent(q Position) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Grid is the board: a rows×cols matrix of colors drawn from a fixed palette.
// Cells are stored in row-major order. Dimensions are fixed for the grid's
// lifetime.
type Grid struct {
	rows   int
	cols   int
	colors int // palette size; valid colors are 1..colors
	cells  []Color
	rng    *rand.Rand
}

// NewGrid creates a grid and fills every cell with a uniformly random color
// from the palette.
func NewGrid(rows, cols, colors int, rng *rand.Rand) *Grid {
	if rows <= 0 || cols <= 0 || colors <= 0 {
		panic(fmt.Sprintf("game: invalid grid dimensions %dx%d with %d colors", rows, cols, colors))
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		colors: colors,
		cells:  make([]Color, rows*cols),
		rng:    rng,
	}
	g.Randomize()
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Colors returns the palette size.
func (g *Grid) Colors() int { return g.colors }

// InBounds returns true if p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index converts a position to a flat array index.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// At returns the color at p. Out-of-bounds access is a caller bug and panics;
// positions always come from valid adjacency walks upstream.
func (g *Grid) At(p Position) Color {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("game: position %v out of bounds for %dx%d grid", p, g.rows, g.cols))
	}
	return g.cells[g.index(p)]
}

// Set writes the color at p. Panics on out-of-bounds access.
func (g *Grid) Set(p Position, c Color) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("game: position %v out of bounds for %dx%d grid", p, g.rows, g.cols))
	}
	g.cells[g.index(p)] = c
}

// Clear empties every given cell. Duplicate positions are harmless.
func (g *Grid) Clear(positions []Position) {
	for _, p := range positions {
		g.Set(p, Empty)
	}
}

// randomColor draws a uniform color from the palette (never Empty).
func (g *Grid) randomColor() Color {
	return Color(1 + g.rng.Intn(g.colors))
}

// Randomize refills every cell with an independent uniform-random color.
func (g *Grid) Randomize() {
	for i := range g.cells {
		g.cells[i] = Color(1 + g.rng.Intn(g.colors))
	}
}

// LiveCount returns the number of non-empty cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy sharing the RNG.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		colors: g.colors,
		cells:  cells,
		rng:    g.rng,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
