package game

import "testing"

func TestCollapseMovesTilesDown(t *testing.T) {
	g := gridFromRows(t, []string{
		"1.3.5.",
		"......",
		"2.4...",
		"......",
		"3.5.1.",
		"......",
	}, 5)

	Collapse(g)

	// Column 0 held 1,2,3 top to bottom; order must be preserved at the
	// bottom of the column.
	wantCol0 := []Color{Empty, Empty, Empty, 1, 2, 3}
	for row, want := range wantCol0 {
		if got := g.At(P(row, 0)); got != want {
			t.Errorf("col 0 row %d = %d, expected %d", row, got, want)
		}
	}

	// Column 2 held 3,4,5 top to bottom.
	wantCol2 := []Color{Empty, Empty, Empty, 3, 4, 5}
	for row, want := range wantCol2 {
		if got := g.At(P(row, 2)); got != want {
			t.Errorf("col 2 row %d = %d, expected %d", row, got, want)
		}
	}

	// Fully empty column stays empty.
	for row := 0; row < 6; row++ {
		if got := g.At(P(row, 1)); got != Empty {
			t.Errorf("col 1 row %d = %d, expected empty", row, got)
		}
	}
}

func TestCollapseIdempotent(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := NewGrid(6, 6, 5, testRNG(seed))
		// Punch random holes.
		rng := testRNG(seed + 1000)
		for i := 0; i < 12; i++ {
			g.Set(P(rng.Intn(6), rng.Intn(6)), Empty)
		}

		Collapse(g)
		once := g.Clone()
		Collapse(g)

		if !g.Equal(once) {
			t.Errorf("seed %d: collapse is not idempotent", seed)
		}
	}
}

func TestCollapsePreservesLiveCount(t *testing.T) {
	g := NewGrid(6, 6, 5, testRNG(7))
	g.Clear([]Position{P(0, 0), P(3, 3), P(5, 2), P(2, 2)})
	before := g.LiveCount()

	Collapse(g)

	if got := g.LiveCount(); got != before {
		t.Errorf("LiveCount() = %d after collapse, expected %d", got, before)
	}
}

func TestFillEmptyRestoresFullBoard(t *testing.T) {
	g := NewGrid(6, 6, 5, testRNG(8))
	g.Clear([]Position{P(0, 0), P(0, 1), P(0, 2), P(4, 4)})

	FillEmpty(g)

	if got := g.LiveCount(); got != 36 {
		t.Errorf("LiveCount() = %d after fill, expected 36", got)
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			if c := g.At(P(row, col)); c > 5 {
				t.Errorf("cell (%d,%d) = %d, outside palette", row, col, c)
			}
		}
	}
}

func TestRefillLeavesPlayableBoard(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g := NewGrid(6, 6, 5, testRNG(seed))
		g.Clear([]Position{P(0, 0), P(1, 0), P(2, 0)})

		Refill(g)

		if g.LiveCount() != 36 {
			t.Errorf("seed %d: board not full after refill", seed)
		}
		if !HasAvailableMove(g) {
			t.Errorf("seed %d: no available move after refill", seed)
		}
	}
}

func TestReshuffleTerminatesAndFillsBoard(t *testing.T) {
	// Two colors on 6x6 almost always yield a move quickly; the point is
	// the loop is bounded and the board is always left fully populated.
	g := NewGrid(6, 6, 2, testRNG(9))
	attempts := Reshuffle(g)

	if attempts < 1 || attempts > MaxReshuffleAttempts {
		t.Errorf("attempts = %d, expected within [1, %d]", attempts, MaxReshuffleAttempts)
	}
	if g.LiveCount() != 36 {
		t.Errorf("LiveCount() = %d after reshuffle, expected 36", g.LiveCount())
	}
}

func TestReshuffleAcceptsBoardAfterCap(t *testing.T) {
	// A single-color palette always has a move, so the loop exits on the
	// first attempt; a degenerate 1x1 board can never have one, exercising
	// the cap fallback.
	g := NewGrid(1, 1, 5, testRNG(10))
	attempts := Reshuffle(g)

	if attempts != MaxReshuffleAttempts {
		t.Errorf("attempts = %d, expected cap %d on a dead board", attempts, MaxReshuffleAttempts)
	}
	if g.At(P(0, 0)) == Empty {
		t.Error("board left empty after capped reshuffle")
	}
}
