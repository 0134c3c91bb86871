package chainpop

import (
	"testing"

	"github.com/avasilyev/chainpop/internal/core"
	"github.com/avasilyev/chainpop/internal/game"
	"github.com/avasilyev/chainpop/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     7,
		TickRate: 10,
		ScreenW:  80,
		ScreenH:  24,
	})
	return g
}

// paintBoard fills the whole board with one color so any walk is a valid path.
func paintBoard(g *Game, c game.Color) {
	grid := g.round.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			grid.Set(game.P(row, col), c)
		}
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "blitz"} {
		if !registry.Exists(id) {
			t.Errorf("Mode %q not registered", id)
		}
	}

	g, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("registry.Create(classic) failed: %v", err)
	}
	if g.ID() != "classic" {
		t.Errorf("ID() = %q, expected classic", g.ID())
	}
}

func TestResetState(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("Fresh game state = %+v, expected zeroed", st)
	}
	if g.round.State().TimeLeft != 60 {
		t.Errorf("Classic clock = %d, expected 60", g.round.State().TimeLeft)
	}

	b := NewBlitz()
	b.Reset(core.RuntimeConfig{Seed: 7, TickRate: 10, ScreenW: 80, ScreenH: 24})
	if b.round.State().TimeLeft != 30 {
		t.Errorf("Blitz clock = %d, expected 30", b.round.State().TimeLeft)
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := newTestGame(t)

	start := g.cursor
	g.Step(frame(core.ActionRight))
	if g.cursor != game.P(start.Row, start.Col+1) {
		t.Errorf("cursor = %v, expected one step right of %v", g.cursor, start)
	}

	// Walk past the right edge; the cursor must clamp.
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.cursor.Col != g.round.Config().Cols-1 {
		t.Errorf("cursor col = %d, expected clamp at %d", g.cursor.Col, g.round.Config().Cols-1)
	}

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionUp))
	}
	if g.cursor.Row != 0 {
		t.Errorf("cursor row = %d, expected clamp at 0", g.cursor.Row)
	}
}

func TestSelectAndCommitViaInput(t *testing.T) {
	g := newTestGame(t)
	paintBoard(g, 1)

	g.Step(frame(core.ActionSelect)) // begin at cursor
	if !g.round.Selection().Active() {
		t.Fatal("Selection should be active after Select")
	}

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	if got := g.round.Selection().Len(); got != 3 {
		t.Fatalf("Path length = %d, expected 3", got)
	}

	res := g.Step(frame(core.ActionSelect)) // release
	if g.round.Selection().Active() {
		t.Error("Selection should be idle after release")
	}
	if res.State.Score != 90 {
		t.Errorf("Score = %d, expected 90 for a straight 3-path", res.State.Score)
	}
	if !res.Bell {
		t.Error("Expected the bell to ring on a cleared path")
	}
	if g.round.Grid().LiveCount() != 36 {
		t.Errorf("Live tiles = %d, expected full board after refill", g.round.Grid().LiveCount())
	}
}

func TestCursorFollowsPathTail(t *testing.T) {
	g := newTestGame(t)
	paintBoard(g, 1)
	start := g.cursor

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionLeft)) // backtrack one step

	if g.round.Selection().Len() != 1 {
		t.Errorf("Path length = %d, expected 1 after backtrack", g.round.Selection().Len())
	}
	if g.cursor != start {
		t.Errorf("cursor = %v, expected back at %v", g.cursor, start)
	}
}

func TestCursorStaysOnRejectedExtend(t *testing.T) {
	g := newTestGame(t)
	paintBoard(g, 1)
	// Make the cell right of the cursor a different color.
	blocked := game.P(g.cursor.Row, g.cursor.Col+1)
	g.round.Grid().Set(blocked, 2)

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))

	if g.round.Selection().Len() != 1 {
		t.Errorf("Path length = %d, expected extend onto wrong color to be ignored", g.round.Selection().Len())
	}
	if g.cursor == blocked {
		t.Error("cursor should not move onto a rejected cell while selecting")
	}
}

func TestBackAbandonsSelection(t *testing.T) {
	g := newTestGame(t)
	paintBoard(g, 1)

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionBack))

	if g.round.Selection().Active() {
		t.Error("Selection should be idle after Back")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0 after abandon", g.State().Score)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	before := g.round.State().TimeLeft
	for i := 0; i < 50; i++ {
		g.Step(frame())
	}
	if g.round.State().TimeLeft != before {
		t.Error("Clock should not run while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Expected unpaused state")
	}
}

func TestRoundEndsAndRestarts(t *testing.T) {
	SetRoundConfig(game.RoundConfig{InitialSeconds: 2})
	t.Cleanup(func() { SetRoundConfig(game.DefaultRoundConfig()) })

	g := newTestGame(t)

	// 2 seconds at 10 ticks per second.
	for i := 0; i < 20; i++ {
		g.Step(frame())
	}
	if !g.State().GameOver {
		t.Fatal("Expected the round to end when the clock runs out")
	}

	// Input after the end is ignored.
	g.Step(frame(core.ActionSelect))
	if g.round.Selection().Active() {
		t.Error("Selection should not start after the round ends")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Error("Expected a fresh round after restart")
	}
	if g.round.State().TimeLeft != 2 {
		t.Errorf("TimeLeft = %d, expected fresh clock", g.round.State().TimeLeft)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if len(out) == 0 {
		t.Fatal("Render produced an empty screen")
	}
	if screen.Row(0) == "" {
		t.Error("Expected a HUD on the first row")
	}

	// Game over overlay renders without panicking.
	SetRoundConfig(game.RoundConfig{InitialSeconds: 1})
	t.Cleanup(func() { SetRoundConfig(game.DefaultRoundConfig()) })
	g2 := newTestGame(t)
	for i := 0; i < 10; i++ {
		g2.Step(frame())
	}
	g2.Render(screen)
}
