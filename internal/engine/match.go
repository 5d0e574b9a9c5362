package engine

// Match is the state machine for one game: board, turn, capture
// counters, last move and two-pass termination. A Match owns its board
// exclusively; instances never share storage. All methods are
// synchronous and run to completion, concurrent use requires external
// locking by the host.
type Match struct {
	board         Board
	current       Stone
	blackCaptured int
	whiteCaptured int
	passes        int
	lastMove      Point
	hasLastMove   bool
	over          bool
}

// NewMatch returns a fresh match: empty board, Black to move, zero
// captures, no last move.
func NewMatch() *Match {
	return &Match{current: Black}
}

// Reset returns the match to its initial state. It is valid in any
// state, including after the game has ended.
func (m *Match) Reset() {
	*m = Match{current: Black}
}

// PlaceStone plays the current player's stone at (row, col). It reports
// false, with no state change at all, when the game is over or the move
// is illegal (off-board, occupied, suicide). On success the captures
// are committed, the capture counter of the moving colour grows by the
// number of stones removed, the pass counter resets and the turn
// passes to the opponent.
func (m *Match) PlaceStone(row, col int) bool {
	if m.over {
		return false
	}
	p := Point{Row: row, Col: col}
	if !p.InBounds() || m.board.At(p) != Empty {
		return false
	}

	// Resolve the move on a copy so an illegal result leaves the
	// authoritative board untouched.
	trial := m.board
	captured, err := applyMove(&trial, p, m.current)
	if err != nil {
		return false
	}

	m.board = trial
	if m.current == Black {
		m.blackCaptured += captured
	} else {
		m.whiteCaptured += captured
	}
	m.lastMove = p
	m.hasLastMove = true
	m.passes = 0
	m.current = m.current.Opponent()
	return true
}

// Pass skips the current player's turn. The second consecutive pass
// ends the match; otherwise the turn goes to the opponent. Passing
// does not clear the last move marker. Ignored once the game is over.
func (m *Match) Pass() {
	if m.over {
		return
	}
	m.passes++
	if m.passes >= 2 {
		m.over = true
		return
	}
	m.current = m.current.Opponent()
}

// CurrentPlayer returns the colour to move.
func (m *Match) CurrentPlayer() Stone {
	return m.current
}

// GameOver reports whether two consecutive passes have ended the match.
func (m *Match) GameOver() bool {
	return m.over
}

// Captured returns the stones each colour has taken so far. The
// counters never decrease within a match.
func (m *Match) Captured() (black, white int) {
	return m.blackCaptured, m.whiteCaptured
}

// StoneAt returns the stone at (row, col), Empty off the board.
func (m *Match) StoneAt(row, col int) Stone {
	return m.board.At(Point{Row: row, Col: col})
}

// LastMove returns the coordinate of the most recent stone placed and
// whether one exists (it does not before the first move or after a
// reset).
func (m *Match) LastMove() (Point, bool) {
	return m.lastMove, m.hasLastMove
}
