package engine

// IntersectionData is the denormalized per-intersection view an
// external renderer consumes.
type IntersectionData struct {
	Row         int   `json:"row"`
	Col         int   `json:"col"`
	Stone       Stone `json:"stone"`
	IsStarPoint bool  `json:"is_star_point"`
	IsLastMove  bool  `json:"is_last_move"`
	IsValidMove bool  `json:"is_valid_move"`
}

// BoardData projects the current match state into one record per
// intersection, row-major. The valid-move flag is evaluated for the
// current player only and is false everywhere once the game is over.
// The projection reads the match and never mutates it.
func (m *Match) BoardData() []IntersectionData {
	data := make([]IntersectionData, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Point{Row: row, Col: col}
			stone := m.board.At(p)
			data = append(data, IntersectionData{
				Row:         row,
				Col:         col,
				Stone:       stone,
				IsStarPoint: p.IsStarPoint(),
				IsLastMove:  m.hasLastMove && m.lastMove == p && stone != Empty,
				IsValidMove: !m.over && IsValidMove(&m.board, p, m.current),
			})
		}
	}
	return data
}
