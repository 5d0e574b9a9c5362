package engine

import "testing"

func TestPlaceStoneCapturesGroup(t *testing.T) {
	// White (3,3) is in atari, Black takes the last liberty.
	m := matchWith(map[Point]Stone{
		{3, 3}: White,
		{2, 3}: Black, {4, 3}: Black, {3, 2}: Black,
	}, Black)

	mustPlace(t, m, 3, 4)

	if got := m.StoneAt(3, 3); got != Empty {
		t.Errorf("captured point holds %v, want Empty", got)
	}
	black, white := m.Captured()
	if black != 1 || white != 0 {
		t.Errorf("captured counts = (%d, %d), want (1, 0)", black, white)
	}
	if m.CurrentPlayer() != White {
		t.Errorf("current player = %v, want white", m.CurrentPlayer())
	}
}

func TestPlaceStoneCapturesLargeGroup(t *testing.T) {
	// A two-stone white chain with a single shared liberty.
	m := matchWith(map[Point]Stone{
		{5, 5}: White, {5, 6}: White,
		{4, 5}: Black, {4, 6}: Black,
		{6, 5}: Black, {6, 6}: Black,
		{5, 4}: Black,
	}, Black)

	mustPlace(t, m, 5, 7)

	for _, p := range []Point{{5, 5}, {5, 6}} {
		if got := m.StoneAt(p.Row, p.Col); got != Empty {
			t.Errorf("point %v holds %v after capture, want Empty", p, got)
		}
	}
	if black, _ := m.Captured(); black != 2 {
		t.Errorf("black captured = %d, want 2", black)
	}
}

func TestPlaceStoneCapturesMultipleGroups(t *testing.T) {
	// Two separate white stones, each with (0,0) as a last liberty.
	// Playing there captures both and gains liberties by doing so.
	m := matchWith(map[Point]Stone{
		{0, 1}: White, {1, 0}: White,
		{0, 2}: Black, {1, 1}: Black, {2, 0}: Black,
	}, Black)

	mustPlace(t, m, 0, 0)

	if m.StoneAt(0, 1) != Empty || m.StoneAt(1, 0) != Empty {
		t.Error("white stones survived a double capture")
	}
	if m.StoneAt(0, 0) != Black {
		t.Error("placed stone is missing after a capturing move")
	}
	if black, _ := m.Captured(); black != 2 {
		t.Errorf("black captured = %d, want 2", black)
	}
}

func TestPlaceStoneSuicideRejected(t *testing.T) {
	// (0,0) is the only liberty of nothing: the white neighbours keep
	// outside liberties, so playing there is plain suicide.
	stones := map[Point]Stone{
		{0, 1}: White, {1, 0}: White, {1, 1}: White,
	}
	m := matchWith(stones, Black)
	before := m.board.Encode()

	if m.PlaceStone(0, 0) {
		t.Fatal("suicide move succeeded")
	}

	if got := m.board.Encode(); got != before {
		t.Error("board changed after a rejected move")
	}
	if black, white := m.Captured(); black != 0 || white != 0 {
		t.Errorf("captured counts = (%d, %d) after a rejected move, want (0, 0)", black, white)
	}
	if m.CurrentPlayer() != Black {
		t.Error("turn switched after a rejected move")
	}
	if _, ok := m.LastMove(); ok {
		t.Error("last move recorded for a rejected move")
	}
}

func TestPlaceStoneIllegalTargets(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{name: "occupied", row: 3, col: 3},
		{name: "row out of range", row: 19, col: 3},
		{name: "col out of range", row: 3, col: 19},
		{name: "negative row", row: -1, col: 3},
		{name: "negative col", row: 3, col: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := NewMatch()
			mustPlace(t, m, 3, 3)
			snap := m.Snapshot()
			if m.PlaceStone(test.row, test.col) {
				t.Fatalf("PlaceStone(%d, %d) succeeded, want failure", test.row, test.col)
			}
			if m.Snapshot() != snap {
				t.Error("match state changed after a rejected move")
			}
		})
	}
}

func TestTurnAlternation(t *testing.T) {
	m := NewMatch()
	if m.CurrentPlayer() != Black {
		t.Fatalf("initial player = %v, want black", m.CurrentPlayer())
	}

	mustPlace(t, m, 3, 3)
	if m.CurrentPlayer() != White {
		t.Errorf("after first move player = %v, want white", m.CurrentPlayer())
	}

	m.Pass()
	if m.CurrentPlayer() != Black {
		t.Errorf("after pass player = %v, want black", m.CurrentPlayer())
	}
}

func TestTwoPassesEndMatch(t *testing.T) {
	m := NewMatch()
	m.Pass()
	if m.GameOver() {
		t.Fatal("game over after a single pass")
	}
	m.Pass()
	if !m.GameOver() {
		t.Fatal("game not over after two consecutive passes")
	}

	// Nothing but Reset is valid now.
	if m.PlaceStone(3, 3) {
		t.Error("PlaceStone succeeded on an ended match")
	}
	snap := m.Snapshot()
	m.Pass()
	if m.Snapshot() != snap {
		t.Error("Pass changed an ended match")
	}
}

func TestStonePlacementResetsPassCount(t *testing.T) {
	m := NewMatch()
	m.Pass()
	mustPlace(t, m, 3, 3)
	m.Pass()
	if m.GameOver() {
		t.Error("two passes separated by a stone ended the match")
	}
	m.Pass()
	if !m.GameOver() {
		t.Error("two consecutive passes did not end the match")
	}
}

func TestPassKeepsLastMove(t *testing.T) {
	m := NewMatch()
	mustPlace(t, m, 3, 3)
	m.Pass()
	p, ok := m.LastMove()
	if !ok || p != (Point{3, 3}) {
		t.Errorf("last move after pass = (%v, %v), want ((3,3), true)", p, ok)
	}
}

func TestResetFromAnyState(t *testing.T) {
	midGame := func() *Match {
		m := NewMatch()
		mustPlace(t, m, 3, 3)
		mustPlace(t, m, 3, 4)
		m.Pass()
		return m
	}
	ended := func() *Match {
		m := midGame()
		m.Pass()
		m.Pass()
		return m
	}

	tests := []struct {
		name  string
		match *Match
	}{
		{name: "mid game", match: midGame()},
		{name: "ended", match: ended()},
		{name: "fresh", match: NewMatch()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.match.Reset()
			if test.match.Snapshot() != NewMatch().Snapshot() {
				t.Error("reset match differs from a fresh one")
			}
			if !test.match.PlaceStone(9, 9) {
				t.Error("reset match refuses a legal move")
			}
		})
	}
}

func TestCapturedCountsAreMonotonic(t *testing.T) {
	// Black captures one stone, then keeps playing: the counter must
	// never go down.
	m := matchWith(map[Point]Stone{
		{3, 3}: White,
		{2, 3}: Black, {4, 3}: Black, {3, 2}: Black,
	}, Black)
	mustPlace(t, m, 3, 4)
	black, _ := m.Captured()

	mustPlace(t, m, 10, 10) // white
	mustPlace(t, m, 11, 11) // black
	if got, _ := m.Captured(); got < black {
		t.Errorf("black captured count fell from %d to %d", black, got)
	}
}

func TestOpeningScenario(t *testing.T) {
	m := NewMatch()

	if !m.PlaceStone(3, 3) {
		t.Fatal("black opening move failed")
	}
	if got := m.StoneAt(3, 3); got != Black {
		t.Errorf("board(3,3) = %v, want black", got)
	}
	if m.CurrentPlayer() != White {
		t.Errorf("current player = %v, want white", m.CurrentPlayer())
	}
	if p, ok := m.LastMove(); !ok || p != (Point{3, 3}) {
		t.Errorf("last move = (%v, %v), want ((3,3), true)", p, ok)
	}

	if m.PlaceStone(3, 3) {
		t.Fatal("white move on an occupied point succeeded")
	}
	if got := m.StoneAt(3, 3); got != Black {
		t.Error("occupied point changed after a rejected move")
	}

	if !m.PlaceStone(3, 4) {
		t.Fatal("white move on an empty point failed")
	}
	if got := m.StoneAt(3, 4); got != White {
		t.Errorf("board(3,4) = %v, want white", got)
	}
}
