// Package engine implements the Go (weiqi) rules: stone placement,
// capture resolution, legality checks, two-pass termination and area
// scoring on a fixed 19x19 board. It holds no I/O and owns all of its
// state, so a host can embed one Match per session.
package engine

// Stone is the contents of a single intersection.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the other player's colour. Empty has no opponent
// and maps to itself.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return s
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}
