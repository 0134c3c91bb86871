package game

// MinPathLen is the minimum clearable path length. The selection commit check
// and the move-availability scan both use this constant.
const MinPathLen = 3

// neighborOffsets are the 4-directional deltas used by adjacency walks.
var neighborOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// HasAvailableMove reports whether any 4-connected same-color component of
// size >= MinPathLen exists. Each cell is visited at most once across the
// whole scan, so the cost is O(rows*cols).
func HasAvailableMove(g *Grid) bool {
	visited := make([]bool, g.rows*g.cols)
	queue := make([]Position, 0, g.rows*g.cols)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			start := P(row, col)
			if visited[g.index(start)] {
				continue
			}
			color := g.At(start)
			if color == Empty {
				visited[g.index(start)] = true
				continue
			}

			// BFS over the component.
			queue = queue[:0]
			queue = append(queue, start)
			visited[g.index(start)] = true
			size := 0
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				size++
				if size >= MinPathLen {
					return true
				}
				for _, d := range neighborOffsets {
					q := P(p.Row+d.Row, p.Col+d.Col)
					if !g.InBounds(q) || visited[g.index(q)] {
						continue
					}
					if g.At(q) != color {
						continue
					}
					visited[g.index(q)] = true
					queue = append(queue, q)
				}
			}
		}
	}
	return false
}
