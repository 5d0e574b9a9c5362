package engine

import "fmt"

// Snapshot is a serializable dump of a match, flat enough for both JSON
// (Redis) and BSON (Mongo archive). LastMoveRow/Col are -1 when no move
// has been played.
type Snapshot struct {
	Board         string `json:"board" bson:"board"`
	CurrentPlayer Stone  `json:"current_player" bson:"current_player"`
	BlackCaptured int    `json:"black_captured" bson:"black_captured"`
	WhiteCaptured int    `json:"white_captured" bson:"white_captured"`
	Passes        int    `json:"passes" bson:"passes"`
	LastMoveRow   int    `json:"last_move_row" bson:"last_move_row"`
	LastMoveCol   int    `json:"last_move_col" bson:"last_move_col"`
	GameOver      bool   `json:"game_over" bson:"game_over"`
}

// Snapshot captures the full observable state of the match.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Board:         m.board.Encode(),
		CurrentPlayer: m.current,
		BlackCaptured: m.blackCaptured,
		WhiteCaptured: m.whiteCaptured,
		Passes:        m.passes,
		LastMoveRow:   -1,
		LastMoveCol:   -1,
		GameOver:      m.over,
	}
	if m.hasLastMove {
		s.LastMoveRow = m.lastMove.Row
		s.LastMoveCol = m.lastMove.Col
	}
	return s
}

// RestoreMatch rebuilds a match from a snapshot. The restored match
// behaves exactly like the one that produced the snapshot.
func RestoreMatch(s Snapshot) (*Match, error) {
	board, err := DecodeBoard(s.Board)
	if err != nil {
		return nil, fmt.Errorf("restore match: %w", err)
	}
	if s.CurrentPlayer != Black && s.CurrentPlayer != White {
		return nil, fmt.Errorf("restore match: invalid current player %d", s.CurrentPlayer)
	}

	m := &Match{
		board:         board,
		current:       s.CurrentPlayer,
		blackCaptured: s.BlackCaptured,
		whiteCaptured: s.WhiteCaptured,
		passes:        s.Passes,
		over:          s.GameOver,
	}
	if s.LastMoveRow >= 0 && s.LastMoveCol >= 0 {
		p := Point{Row: s.LastMoveRow, Col: s.LastMoveCol}
		if !p.InBounds() {
			return nil, fmt.Errorf("restore match: last move %v off the board", p)
		}
		m.lastMove = p
		m.hasLastMove = true
	}
	return m, nil
}
