package engine

import "errors"

// ErrSuicide means the placed group would be left without a liberty and
// the move captures nothing.
var ErrSuicide = errors.New("suicide")

// applyMove places a stone of the given colour at p on b, removes every
// adjacent opposing group whose last liberty it took, and returns the
// number of stones captured. Opposing captures are resolved before the
// placed group is checked, so a move that frees its own liberty by
// capturing is legal. If the placed group still has no liberties the
// board is left in an undefined state and ErrSuicide is returned:
// callers always run applyMove against a disposable copy and adopt it
// only on success.
//
// The caller guarantees p is an empty on-board point.
func applyMove(b *Board, p Point, color Stone) (captured int, err error) {
	b.set(p, color)

	opponent := color.Opponent()
	scratch := make([]Point, 0, 4)
	for _, n := range p.neighbors(scratch) {
		if b.At(n) != opponent {
			continue
		}
		g := GroupAt(b, n)
		if len(g.Liberties) == 0 {
			b.removeGroup(g)
			captured += g.Size()
		}
	}

	if own := GroupAt(b, p); len(own.Liberties) == 0 {
		return 0, ErrSuicide
	}
	return captured, nil
}
