package game

import "testing"

// gridFromRows builds a grid from a string layout: digits are colors,
// '.' is an empty cell.
func gridFromRows(t *testing.T, rows []string, colors int) *Grid {
	t.Helper()
	g := NewGrid(len(rows), len(rows[0]), colors, testRNG(0))
	for r, row := range rows {
		if len(row) != g.Cols() {
			t.Fatalf("row %d has %d cells, expected %d", r, len(row), g.Cols())
		}
		for c, ch := range row {
			if ch == '.' {
				g.Set(P(r, c), Empty)
				continue
			}
			g.Set(P(r, c), Color(ch-'0'))
		}
	}
	return g
}

func TestHasAvailableMove(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected bool
	}{
		{
			name: "all one color",
			rows: []string{
				"111111",
				"111111",
				"111111",
				"111111",
				"111111",
				"111111",
			},
			expected: true,
		},
		{
			name: "checkerboard of two colors",
			rows: []string{
				"121212",
				"212121",
				"121212",
				"212121",
				"121212",
				"212121",
			},
			expected: false,
		},
		{
			name: "single vertical triple",
			rows: []string{
				"123451",
				"223451",
				"123451",
				"234512",
				"345123",
				"451234",
			},
			expected: true,
		},
		{
			name: "pairs only",
			rows: []string{
				"112233",
				"445511",
				"223344",
				"551122",
				"334455",
				"112233",
			},
			expected: false,
		},
		{
			name: "L-shaped component counts",
			rows: []string{
				"122121",
				"212121",
				"122112",
				"212121",
				"121212",
				"212121",
			},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows, 5)
			if got := HasAvailableMove(g); got != tc.expected {
				t.Errorf("HasAvailableMove() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHasAvailableMoveMatchesExhaustiveCheck(t *testing.T) {
	// Cross-check the early-exit BFS against a plain component count on
	// random boards.
	for seed := int64(0); seed < 50; seed++ {
		g := NewGrid(6, 6, 5, testRNG(seed))
		got := HasAvailableMove(g)
		expected := largestComponent(g) >= MinPathLen
		if got != expected {
			t.Errorf("seed %d: HasAvailableMove() = %v, largest component %d", seed, got, largestComponent(g))
		}
	}
}

// largestComponent is a deliberately simple reference implementation.
func largestComponent(g *Grid) int {
	visited := make(map[Position]bool)
	best := 0
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			start := P(row, col)
			if visited[start] || g.At(start) == Empty {
				continue
			}
			color := g.At(start)
			stack := []Position{start}
			visited[start] = true
			size := 0
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				size++
				for _, d := range neighborOffsets {
					q := P(p.Row+d.Row, p.Col+d.Col)
					if g.InBounds(q) && !visited[q] && g.At(q) == color {
						visited[q] = true
						stack = append(stack, q)
					}
				}
			}
			if size > best {
				best = size
			}
		}
	}
	return best
}

func TestHasAvailableMoveIgnoresEmptyCells(t *testing.T) {
	g := gridFromRows(t, []string{
		"1.1.1.",
		".1.1.1",
		"1.1.1.",
		".1.1.1",
		"1.1.1.",
		".1.1.1",
	}, 5)
	if HasAvailableMove(g) {
		t.Error("isolated cells separated by empties should not form a move")
	}
}
