// Package chainpop adapts the round engine to the platform's Game interface.
// It owns the cursor, maps semantic input actions to path-selection calls,
// and renders the board, HUD and overlays into the screen buffer.
package chainpop

import (
	"fmt"

	"github.com/avasilyev/chainpop/internal/core"
	"github.com/avasilyev/chainpop/internal/game"
	"github.com/avasilyev/chainpop/internal/registry"
)

// Mode selects the round clock variant.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeBlitz   Mode = "blitz"
)

// Package-level wiring set by the command layer before the platform starts.
var (
	roundConfig  = game.DefaultRoundConfig()
	blitzSeconds = 30
	bestStore    game.BestStore
	submitter    game.Submitter
)

// SetRoundConfig installs the board and round parameters for new games.
func SetRoundConfig(cfg game.RoundConfig) {
	roundConfig = cfg
}

// SetBlitzSeconds sets the shortened clock used by blitz mode.
func SetBlitzSeconds(seconds int) {
	if seconds > 0 {
		blitzSeconds = seconds
	}
}

// SetBestStore installs best-stats persistence for new games.
func SetBestStore(s game.BestStore) {
	bestStore = s
}

// SetSubmitter installs a leaderboard sink for new games.
func SetSubmitter(s game.Submitter) {
	submitter = s
}

// Game drives one ChainPop round behind the platform's Game interface.
type Game struct {
	mode       Mode
	round      *game.Round
	playerName string // per-instance override, e.g. the SSH user

	cursor   game.Position
	paused   bool
	tickRate int

	// Transient display state fed by round notifications.
	bell          bool
	lastCommit    game.Commit
	flashTicks    int
	reshuffleTick int
	topScores     []game.LeaderboardEntry

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz-mode game with a shortened clock.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "blitz"
	}
	return "classic"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "ChainPop (Blitz)"
	}
	return "ChainPop (Classic)"
}

// SetPlayerName overrides the configured player name for this instance.
// Used by the SSH server to attribute scores to the connecting user.
func (g *Game) SetPlayerName(name string) {
	g.playerName = name
}

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rc := roundConfig
	rc.Seed = cfg.Seed
	rc.TicksPerSecond = cfg.TickRate
	if g.mode == ModeBlitz {
		rc.InitialSeconds = blitzSeconds
	}
	if g.playerName != "" {
		rc.PlayerName = g.playerName
	}

	g.round = game.NewRound(rc)
	g.round.SetListener(g)
	if bestStore != nil {
		g.round.SetBestStore(bestStore)
	}
	if submitter != nil {
		g.round.SetSubmitter(submitter)
	}

	g.tickRate = cfg.TickRate
	g.paused = false
	g.bell = false
	g.flashTicks = 0
	g.reshuffleTick = 0
	g.topScores = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.round.Start()
	rcEff := g.round.Config()
	g.cursor = game.P(rcEff.Rows/2, rcEff.Cols/2)
}

// checkScreenSize flags the round as unplayable on tiny terminals.
func (g *Game) checkScreenSize() {
	rc := roundConfig
	requiredW := rc.Cols*tileWidth + 4
	requiredH := rc.Rows + hudHeight + 4
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.round.State().Ended {
		seed := g.round.Config().Seed + 1
		g.Reset(core.RuntimeConfig{
			Seed:     seed,
			TickRate: g.tickRate,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
		})
		return g.result()
	}

	if input.Has(core.ActionPause) && !g.round.State().Ended {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return g.result()
	}

	g.processInput(input)
	g.round.Tick()

	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.reshuffleTick > 0 {
		g.reshuffleTick--
	}

	return g.result()
}

// result packages the current state, consuming a pending bell.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Bell: g.bell}
	g.bell = false
	return res
}

// processInput maps semantic actions onto the cursor and the selection
// state machine.
func (g *Game) processInput(input core.InputFrame) {
	if g.round.State().Ended {
		return
	}

	var dr, dc int
	switch {
	case input.Has(core.ActionUp):
		dr = -1
	case input.Has(core.ActionDown):
		dr = 1
	case input.Has(core.ActionLeft):
		dc = -1
	case input.Has(core.ActionRight):
		dc = 1
	}

	if dr != 0 || dc != 0 {
		g.moveCursor(dr, dc)
	}

	sel := g.round.Selection()
	switch {
	case input.Has(core.ActionSelect):
		if sel.Active() {
			g.round.EndSelection()
		} else {
			g.round.BeginSelection(g.cursor)
		}
	case input.Has(core.ActionConfirm):
		if sel.Active() {
			g.round.EndSelection()
		}
	case input.Has(core.ActionBack):
		if sel.Active() {
			sel.Reset()
		}
	}
}

// moveCursor moves the cursor one cell, clamped to the board. While a drag is
// active the cursor tracks the path tail: a move that the selection rejects
// (wrong color, diagonal revisit) leaves both the path and the cursor alone.
func (g *Game) moveCursor(dr, dc int) {
	rc := g.round.Config()
	target := game.P(
		core.Clamp(g.cursor.Row+dr, 0, rc.Rows-1),
		core.Clamp(g.cursor.Col+dc, 0, rc.Cols-1),
	)
	if target == g.cursor {
		return
	}

	if g.round.Selection().Active() {
		if g.round.ExtendSelection(target) {
			g.cursor = target
		}
		return
	}
	g.cursor = target
}

// --- Listener callbacks (fed synchronously by the round) ---

// GridChanged is part of the round's Listener interface.
func (g *Game) GridChanged(*game.Grid) {}

// SelectionChanged is part of the round's Listener interface.
func (g *Game) SelectionChanged([]game.Position) {}

// BoardReshuffled shows a transient notice when a dead board was reshuffled.
func (g *Game) BoardReshuffled() {
	g.reshuffleTick = 2 * g.tickRateOrDefault()
}

// ChainCleared rings the bell and starts the score flash.
func (g *Game) ChainCleared(c game.Commit) {
	g.bell = true
	g.lastCommit = c
	g.flashTicks = g.tickRateOrDefault() / 2
}

// RoundEnded fetches the top scores for the game-over overlay.
func (g *Game) RoundEnded(game.RoundState) {
	if submitter == nil {
		return
	}
	if top, err := submitter.TopScores(5); err == nil {
		g.topScores = top
	}
}

func (g *Game) tickRateOrDefault() int {
	if g.tickRate > 0 {
		return g.tickRate
	}
	return 60
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.round.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Ended,
		Paused:   g.paused,
	}
}

// DebugState returns a one-line summary for logging.
func (g *Game) DebugState() string {
	st := g.round.State()
	return fmt.Sprintf("mode=%s score=%d chain=%d time=%d ended=%v",
		g.mode, st.Score, st.Chain, st.TimeLeft, st.Ended)
}
