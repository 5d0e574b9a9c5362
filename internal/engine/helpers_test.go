package engine

import "testing"

// boardWith builds a board holding the given stones.
func boardWith(stones map[Point]Stone) Board {
	var b Board
	for p, s := range stones {
		b.set(p, s)
	}
	return b
}

// matchWith builds a mid-game match around an arbitrary position.
func matchWith(stones map[Point]Stone, current Stone) *Match {
	return &Match{
		board:   boardWith(stones),
		current: current,
	}
}

// mustPlace fails the test when a move expected to be legal is not.
func mustPlace(t *testing.T, m *Match, row, col int) {
	t.Helper()
	if !m.PlaceStone(row, col) {
		t.Fatalf("PlaceStone(%d, %d) failed, want success", row, col)
	}
}
