package game

// Commit describes a finalized path reported to the round controller.
type Commit struct {
	Positions []Position
	Length    int
	Turns     int
}

// Selection is the path-selection state machine. It tracks an in-progress
// drag over same-color adjacent tiles. Irregular input (non-adjacent cells,
// wrong colors, repeats other than a single-step backtrack, calls in the
// wrong state) is ignored rather than rejected: it models imprecise pointer
// movement and overlapping input sources, not caller bugs.
type Selection struct {
	grid      *Grid
	path      []Position
	active    Color
	selecting bool
	turns     int
}

// NewSelection creates an idle selection bound to a grid.
func NewSelection(grid *Grid) *Selection {
	return &Selection{grid: grid}
}

// Active returns true while a drag is in progress.
func (s *Selection) Active() bool { return s.selecting }

// Color returns the path's active color, or Empty when idle.
func (s *Selection) Color() Color {
	if !s.selecting {
		return Empty
	}
	return s.active
}

// Path returns a copy of the current path.
func (s *Selection) Path() []Position {
	out := make([]Position, len(s.path))
	copy(out, s.path)
	return out
}

// Len returns the current path length.
func (s *Selection) Len() int { return len(s.path) }

// Turns returns the number of direction changes along the path.
func (s *Selection) Turns() int { return s.turns }

// Last returns the path's last position; ok is false when idle.
func (s *Selection) Last() (Position, bool) {
	if len(s.path) == 0 {
		return Position{}, false
	}
	return s.path[len(s.path)-1], true
}

// Contains returns true if p is on the current path.
func (s *Selection) Contains(p Position) bool {
	return s.indexOf(p) >= 0
}

func (s *Selection) indexOf(p Position) int {
	for i, q := range s.path {
		if q == p {
			return i
		}
	}
	return -1
}

// Begin starts a selection at p. Valid only when idle; otherwise a no-op
// returning false.
func (s *Selection) Begin(p Position) bool {
	if s.selecting || !s.grid.InBounds(p) {
		return false
	}
	c := s.grid.At(p)
	if c == Empty {
		return false
	}
	s.selecting = true
	s.active = c
	s.path = append(s.path[:0], p)
	s.turns = 0
	return true
}

// Extend grows (or backtracks) the path to p. Valid only while selecting.
// Returns true if the path changed.
func (s *Selection) Extend(p Position) bool {
	if !s.selecting || !s.grid.InBounds(p) {
		return false
	}
	last := s.path[len(s.path)-1]
	if !last.Adjacent(p) {
		return false
	}
	if i := s.indexOf(p); i >= 0 {
		// Only backing up exactly one step shortens the path; any other
		// revisit is ignored.
		if i == len(s.path)-2 {
			s.path = s.path[:len(s.path)-1]
			s.turns = countTurns(s.path)
			return true
		}
		return false
	}
	if s.grid.At(p) != s.active {
		return false
	}
	s.path = append(s.path, p)
	s.turns = countTurns(s.path)
	return true
}

// End finishes the drag and returns to idle. A path of length >= MinPathLen
// is a commit; anything shorter is an abandon. Calling End while idle is a
// no-op.
func (s *Selection) End() (Commit, bool) {
	if !s.selecting {
		return Commit{}, false
	}
	var c Commit
	committed := false
	if len(s.path) >= MinPathLen {
		positions := make([]Position, len(s.path))
		copy(positions, s.path)
		c = Commit{
			Positions: positions,
			Length:    len(positions),
			Turns:     s.turns,
		}
		committed = true
	}
	s.reset()
	return c, committed
}

// Reset abandons any in-progress selection.
func (s *Selection) Reset() {
	s.reset()
}

func (s *Selection) reset() {
	s.selecting = false
	s.active = Empty
	s.path = s.path[:0]
	s.turns = 0
}

// countTurns recomputes the number of direction changes from scratch, so the
// count can never desync from the path's true shape.
func countTurns(path []Position) int {
	if len(path) < 3 {
		return 0
	}
	turns := 0
	prevDR := path[1].Row - path[0].Row
	prevDC := path[1].Col - path[0].Col
	for i := 2; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		if dr != prevDR || dc != prevDC {
			turns++
		}
		prevDR, prevDC = dr, dc
	}
	return turns
}
