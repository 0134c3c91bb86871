package game

import "math/rand"

// RoundConfig holds the tunable parameters of a round. Zero values are
// replaced by the defaults from DefaultRoundConfig.
type RoundConfig struct {
	Rows             int
	Cols             int
	Colors           int
	InitialSeconds   int // round clock at start
	BonusMinLen      int // shortest path that earns bonus time
	ChainDecayMillis int // inactivity window before the multiplier resets
	TicksPerSecond   int // platform tick rate driving the round clock
	PlayerName       string
	Seed             int64
}

// DefaultRoundConfig returns the standard 6x6, 5-color, 60-second round.
func DefaultRoundConfig() RoundConfig {
	return RoundConfig{
		Rows:             6,
		Cols:             6,
		Colors:           5,
		InitialSeconds:   60,
		BonusMinLen:      5,
		ChainDecayMillis: 2000,
		TicksPerSecond:   60,
		PlayerName:       "Anonymous",
	}
}

// RoundState is the mutable per-round scoreboard. Score is monotonic within
// a round; MaxTimeForBar is a display-scaling high-water mark only.
type RoundState struct {
	Score         int
	Chain         int // current multiplier, >= 1
	MaxChain      int // longest single path cleared this round
	TimeLeft      int // seconds; bonuses can push it above InitialSeconds
	MaxTimeForBar int
	Ended         bool
}

// BestStats are high-water marks persisted across rounds.
type BestStats struct {
	BestScore int
	BestChain int
}

// LeaderboardEntry is one row of a top-scores listing.
type LeaderboardEntry struct {
	Name     string
	Score    int
	MaxChain int
}

// Listener receives board and round notifications. All callbacks are
// fire-and-forget: they must not feed back into round state.
type Listener interface {
	GridChanged(g *Grid)
	SelectionChanged(path []Position)
	BoardReshuffled()
	ChainCleared(c Commit)
	RoundEnded(s RoundState)
}

// BestStore persists best stats. Failures never affect gameplay.
type BestStore interface {
	LoadBest(name string) (BestStats, error)
	SaveBest(name string, stats BestStats) error
}

// Submitter is an optional score sink (local table or remote service).
// Failures never affect gameplay.
type Submitter interface {
	SubmitScore(name string, score, maxChain int) error
	TopScores(limit int) ([]LeaderboardEntry, error)
}

// Round orchestrates one timed session: it owns the grid, the selection
// state machine, the round clock and the chain-decay deadline. All methods
// are driven synchronously from a single event loop; there is no internal
// concurrency.
type Round struct {
	cfg  RoundConfig
	rng  *rand.Rand
	grid *Grid
	sel  *Selection

	state RoundState
	best  BestStats

	tick          uint64
	tickInSecond  int
	chainDeadline uint64 // absolute tick; 0 = no pending decay
	active        bool

	listener  Listener
	bestStore BestStore
	submitter Submitter
}

// NewRound creates a round with the given configuration. Collaborators are
// optional; attach them before Start.
func NewRound(cfg RoundConfig) *Round {
	def := DefaultRoundConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.Colors <= 0 {
		cfg.Colors = def.Colors
	}
	if cfg.InitialSeconds <= 0 {
		cfg.InitialSeconds = def.InitialSeconds
	}
	if cfg.BonusMinLen <= 0 {
		cfg.BonusMinLen = def.BonusMinLen
	}
	if cfg.ChainDecayMillis <= 0 {
		cfg.ChainDecayMillis = def.ChainDecayMillis
	}
	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = def.TicksPerSecond
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = def.PlayerName
	}
	return &Round{cfg: cfg}
}

// SetListener attaches the render/audio notification sink.
func (r *Round) SetListener(l Listener) { r.listener = l }

// SetBestStore attaches best-stats persistence.
func (r *Round) SetBestStore(s BestStore) { r.bestStore = s }

// SetSubmitter attaches a leaderboard sink.
func (r *Round) SetSubmitter(s Submitter) { r.submitter = s }

// Config returns the effective round configuration.
func (r *Round) Config() RoundConfig { return r.cfg }

// Grid returns the live board. Nil before the first Start.
func (r *Round) Grid() *Grid { return r.grid }

// Selection returns the path state machine. Nil before the first Start.
func (r *Round) Selection() *Selection { return r.sel }

// State returns the current round scoreboard.
func (r *Round) State() RoundState { return r.state }

// Best returns the persisted high-water marks as loaded/updated this session.
func (r *Round) Best() BestStats { return r.best }

// PlayerName returns the display name attached to this round.
func (r *Round) PlayerName() string { return r.cfg.PlayerName }

// Active returns true while the round clock is running.
func (r *Round) Active() bool { return r.active }

// Start begins a new round: any previous clock and decay deadline are
// cancelled wholesale, state is reset, the board is regenerated, and the
// move guard reshuffles before play if the fresh board happens to be dead.
func (r *Round) Start() {
	r.rng = rand.New(rand.NewSource(r.cfg.Seed))
	r.tick = 0
	r.tickInSecond = 0
	r.chainDeadline = 0
	r.state = RoundState{
		Chain:         1,
		TimeLeft:      r.cfg.InitialSeconds,
		MaxTimeForBar: r.cfg.InitialSeconds,
	}
	r.grid = NewGrid(r.cfg.Rows, r.cfg.Cols, r.cfg.Colors, r.rng)
	if !HasAvailableMove(r.grid) {
		Reshuffle(r.grid)
		r.notifyReshuffled()
	}
	r.sel = NewSelection(r.grid)
	r.active = true

	if r.bestStore != nil {
		if best, err := r.bestStore.LoadBest(r.cfg.PlayerName); err == nil {
			r.best = best
		}
	}
	r.notifyGrid()
	r.notifySelection()
}

// Tick advances the round by one platform tick. The round clock loses one
// second every TicksPerSecond ticks; the chain multiplier decays once its
// deadline passes. No-op after the round has ended.
func (r *Round) Tick() {
	if !r.active {
		return
	}
	r.tick++

	if r.chainDeadline != 0 && r.tick >= r.chainDeadline {
		r.state.Chain = 1
		r.chainDeadline = 0
	}

	r.tickInSecond++
	if r.tickInSecond < r.cfg.TicksPerSecond {
		return
	}
	r.tickInSecond = 0
	r.state.TimeLeft--
	if r.state.TimeLeft <= 0 {
		r.state.TimeLeft = 0
		r.end()
	}
}

// BeginSelection starts a drag at p. Ignored once the clock has expired.
func (r *Round) BeginSelection(p Position) bool {
	if !r.active {
		return false
	}
	if !r.sel.Begin(p) {
		return false
	}
	r.notifySelection()
	return true
}

// ExtendSelection grows or backtracks the drag.
func (r *Round) ExtendSelection(p Position) bool {
	if !r.active {
		return false
	}
	if !r.sel.Extend(p) {
		return false
	}
	r.notifySelection()
	return true
}

// EndSelection releases the drag. A path of MinPathLen or longer commits:
// score, bonus time, board clear and refill all apply synchronously before
// the next input event. A shorter path is abandoned with no state change.
func (r *Round) EndSelection() (Commit, bool) {
	if !r.active {
		return Commit{}, false
	}
	commit, ok := r.sel.End()
	if !ok {
		r.notifySelection()
		return Commit{}, false
	}
	r.applyCommit(commit)
	return commit, true
}

// applyCommit runs the commit pipeline: scoring, timers, board mutation,
// refill, persistence and notifications.
func (r *Round) applyCommit(c Commit) {
	gained := Score(c.Length, c.Turns, r.state.Chain)
	r.state.Score += gained

	if c.Length >= r.cfg.BonusMinLen {
		r.state.TimeLeft += c.Length - (r.cfg.BonusMinLen - 1)
		if r.state.TimeLeft > r.state.MaxTimeForBar {
			r.state.MaxTimeForBar = r.state.TimeLeft
		}
	}
	if c.Length > r.state.MaxChain {
		r.state.MaxChain = c.Length
	}
	r.updateBest()

	r.grid.Clear(c.Positions)
	if Refill(r.grid) {
		r.notifyReshuffled()
	}

	r.state.Chain++
	r.chainDeadline = r.tick + uint64(r.decayTicks())

	if r.listener != nil {
		r.listener.ChainCleared(c)
	}
	r.notifyGrid()
	r.notifySelection()
}

// updateBest raises the persisted high-water marks when the current round
// exceeds them. Persistence failures are ignored.
func (r *Round) updateBest() {
	improved := false
	if r.state.Score > r.best.BestScore {
		r.best.BestScore = r.state.Score
		improved = true
	}
	if r.state.MaxChain > r.best.BestChain {
		r.best.BestChain = r.state.MaxChain
		improved = true
	}
	if improved && r.bestStore != nil {
		//nolint:errcheck // Best-effort save, gameplay continues regardless
		r.bestStore.SaveBest(r.cfg.PlayerName, r.best)
	}
}

// end freezes the round and fires the end-of-round callouts. The score
// submission is fire-and-forget: the round ends identically whether or not
// the leaderboard is reachable.
func (r *Round) end() {
	r.active = false
	r.state.Ended = true
	r.sel.Reset()
	r.chainDeadline = 0

	if r.submitter != nil && r.state.Score > 0 {
		//nolint:errcheck // Best-effort submission
		r.submitter.SubmitScore(r.cfg.PlayerName, r.state.Score, r.state.MaxChain)
	}
	if r.listener != nil {
		r.listener.RoundEnded(r.state)
	}
}

func (r *Round) decayTicks() int {
	t := r.cfg.ChainDecayMillis * r.cfg.TicksPerSecond / 1000
	if t < 1 {
		t = 1
	}
	return t
}

func (r *Round) notifyGrid() {
	if r.listener != nil {
		r.listener.GridChanged(r.grid)
	}
}

func (r *Round) notifySelection() {
	if r.listener != nil {
		r.listener.SelectionChanged(r.sel.Path())
	}
}

func (r *Round) notifyReshuffled() {
	if r.listener != nil {
		r.listener.BoardReshuffled()
	}
}
