package engine

import (
	"fmt"
	"strings"
)

// Board holds the occupancy of every intersection. The zero value is an
// empty board. Board is a value type on purpose: assignment copies the
// whole grid, which is how hypothetical positions are evaluated without
// touching the authoritative one.
type Board struct {
	cells [BoardSize * BoardSize]Stone
}

// At returns the stone at p. Off-board points read as Empty.
func (b *Board) At(p Point) Stone {
	if !p.InBounds() {
		return Empty
	}
	return b.cells[p.index()]
}

func (b *Board) set(p Point, s Stone) {
	b.cells[p.index()] = s
}

// removeGroup clears every member of g from the board.
func (b *Board) removeGroup(g *Group) {
	for _, p := range g.Stones {
		b.cells[p.index()] = Empty
	}
}

// count returns the number of intersections holding s.
func (b *Board) count(s Stone) int {
	n := 0
	for i := range b.cells {
		if b.cells[i] == s {
			n++
		}
	}
	return n
}

const boardRunes = ".BW"

// Encode serializes the board as a 361-character string in row-major
// order, '.' for empty, 'B' for black, 'W' for white.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for i := range b.cells {
		sb.WriteByte(boardRunes[b.cells[i]])
	}
	return sb.String()
}

// DecodeBoard parses a string produced by Encode.
func DecodeBoard(s string) (Board, error) {
	var b Board
	if len(s) != len(b.cells) {
		return b, fmt.Errorf("board string has %d cells, want %d", len(s), len(b.cells))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			b.cells[i] = Empty
		case 'B':
			b.cells[i] = Black
		case 'W':
			b.cells[i] = White
		default:
			return Board{}, fmt.Errorf("board string has invalid cell %q at %d", s[i], i)
		}
	}
	return b, nil
}
