package engine

// Group is a maximal set of same-colour stones connected by shared
// edges, together with its liberties. Groups are derived on demand and
// never stored.
type Group struct {
	Color     Stone
	Stones    []Point
	Liberties map[Point]struct{}
}

// Size returns the number of stones in the group.
func (g *Group) Size() int {
	return len(g.Stones)
}

// GroupAt computes the group containing start and its liberty set by a
// breadth-first search over same-colour 4-adjacency. It is a pure
// function of the board: safe against scratch copies, each cell visited
// at most once. The result is nil if start is empty or off the board.
func GroupAt(b *Board, start Point) *Group {
	color := b.At(start)
	if color == Empty {
		return nil
	}

	g := &Group{
		Color:     color,
		Liberties: make(map[Point]struct{}),
	}

	var visited [BoardSize * BoardSize]bool
	queue := make([]Point, 0, 8)
	scratch := make([]Point, 0, 4)

	visited[start.index()] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		g.Stones = append(g.Stones, p)

		scratch = p.neighbors(scratch[:0])
		for _, n := range scratch {
			switch b.At(n) {
			case Empty:
				g.Liberties[n] = struct{}{}
			case color:
				if !visited[n.index()] {
					visited[n.index()] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return g
}
