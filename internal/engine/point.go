package engine

import "strconv"

// BoardSize is the number of lines per side. The engine supports the
// standard board only.
const BoardSize = 19

// Point identifies an intersection. Row and Col are 0-indexed from the
// top-left corner.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the point lies on the board.
func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// neighbors appends the orthogonally adjacent on-board points to dst
// and returns it. Passing a reused slice avoids an allocation per call.
func (p Point) neighbors(dst []Point) []Point {
	if p.Row > 0 {
		dst = append(dst, Point{p.Row - 1, p.Col})
	}
	if p.Row < BoardSize-1 {
		dst = append(dst, Point{p.Row + 1, p.Col})
	}
	if p.Col > 0 {
		dst = append(dst, Point{p.Row, p.Col - 1})
	}
	if p.Col < BoardSize-1 {
		dst = append(dst, Point{p.Row, p.Col + 1})
	}
	return dst
}

func (p Point) index() int {
	return p.Row*BoardSize + p.Col
}

// IsStarPoint reports whether the point is one of the nine hoshi of the
// 19x19 board. Star points carry no game state, only a rendering hint.
func (p Point) IsStarPoint() bool {
	return isStarLine(p.Row) && isStarLine(p.Col)
}

func isStarLine(i int) bool {
	return i == 3 || i == 9 || i == 15
}

// ColumnLabel returns the display label for a column, "A" through "S".
// The empty string is returned for an index off the board.
func ColumnLabel(col int) string {
	if col < 0 || col >= BoardSize {
		return ""
	}
	return string(rune('A' + col))
}

// RowLabel returns the display label for a row, "19" at the top down to
// "1". The empty string is returned for an index off the board.
func RowLabel(row int) string {
	if row < 0 || row >= BoardSize {
		return ""
	}
	return strconv.Itoa(BoardSize - row)
}
