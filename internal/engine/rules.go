package engine

// IsValidMove reports whether a stone of the given colour may be played
// at p on b. A move is illegal when the point is off the board, already
// occupied, or resolves to suicide after captures. The check runs
// against a copy of the board and never mutates b.
//
// There is no ko restriction: recapturing immediately is allowed.
func IsValidMove(b *Board, p Point, color Stone) bool {
	if color == Empty {
		return false
	}
	if !p.InBounds() {
		return false
	}
	if b.At(p) != Empty {
		return false
	}

	trial := *b
	_, err := applyMove(&trial, p, color)
	return err == nil
}
