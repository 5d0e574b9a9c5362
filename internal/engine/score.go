package engine

// Komi is White's fixed compensation for moving second.
const Komi = 6.5

// Scores computes the final area score for each colour: stones on the
// board plus enclosed territory, with Komi added to White. Every stone
// still on the board counts as alive; there is no dead-stone inference,
// matching the two-pass termination rule. Meaningful once GameOver
// reports true, but callable at any time.
func (m *Match) Scores() (black, white float64) {
	blackTerritory, whiteTerritory := territories(&m.board)
	black = float64(m.board.count(Black) + blackTerritory)
	white = float64(m.board.count(White)+whiteTerritory) + Komi
	return black, white
}

// territories partitions the empty intersections into maximal
// 4-connected regions and credits each region entirely to the single
// colour bordering it. Regions touching both colours, or none, are
// neutral.
func territories(b *Board) (black, white int) {
	var visited [BoardSize * BoardSize]bool
	queue := make([]Point, 0, BoardSize)
	scratch := make([]Point, 0, 4)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			start := Point{Row: row, Col: col}
			if visited[start.index()] || b.At(start) != Empty {
				continue
			}

			size := 0
			touchesBlack, touchesWhite := false, false
			visited[start.index()] = true
			queue = append(queue[:0], start)

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				size++

				scratch = p.neighbors(scratch[:0])
				for _, n := range scratch {
					switch b.At(n) {
					case Empty:
						if !visited[n.index()] {
							visited[n.index()] = true
							queue = append(queue, n)
						}
					case Black:
						touchesBlack = true
					case White:
						touchesWhite = true
					}
				}
			}

			switch {
			case touchesBlack && !touchesWhite:
				black += size
			case touchesWhite && !touchesBlack:
				white += size
			}
		}
	}
	return black, white
}
