package game

// Snapshot captures the complete round state for determinism testing and for
// the HUD without exposing the round's internals.
type Snapshot struct {
	Tick          uint64
	Score         int
	Chain         int
	MaxChain      int
	TimeLeft      int
	MaxTimeForBar int
	BestScore     int
	BestChain     int
	Selecting     bool
	PathLen       int
	PathTurns     int
	LiveTiles     int
	Ended         bool
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          r.tick,
		Score:         r.state.Score,
		Chain:         r.state.Chain,
		MaxChain:      r.state.MaxChain,
		TimeLeft:      r.state.TimeLeft,
		MaxTimeForBar: r.state.MaxTimeForBar,
		BestScore:     r.best.BestScore,
		BestChain:     r.best.BestChain,
		Ended:         r.state.Ended,
	}
	if r.sel != nil {
		s.Selecting = r.sel.Active()
		s.PathLen = r.sel.Len()
		s.PathTurns = r.sel.Turns()
	}
	if r.grid != nil {
		s.LiveTiles = r.grid.LiveCount()
	}
	return s
}
