package engine

import "testing"

func TestNeighborsCount(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  int
	}{
		{name: "corner", point: Point{0, 0}, want: 2},
		{name: "opposite corner", point: Point{18, 18}, want: 2},
		{name: "top edge", point: Point{0, 9}, want: 3},
		{name: "left edge", point: Point{9, 0}, want: 3},
		{name: "center", point: Point{9, 9}, want: 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.point.neighbors(nil)
			if len(got) != test.want {
				t.Errorf("neighbors(%v) returned %d points, want %d", test.point, len(got), test.want)
			}
			for _, n := range got {
				if !n.InBounds() {
					t.Errorf("neighbors(%v) returned off-board point %v", test.point, n)
				}
			}
		})
	}
}

func TestStarPoints(t *testing.T) {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (Point{row, col}).IsStarPoint() {
				count++
			}
		}
	}
	if count != 9 {
		t.Errorf("board has %d star points, want 9", count)
	}

	if !(Point{9, 9}).IsStarPoint() {
		t.Error("tengen (9,9) is not a star point")
	}
	if (Point{9, 10}).IsStarPoint() {
		t.Error("(9,10) reported as a star point")
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantCol string
		wantRow string
	}{
		{name: "first", index: 0, wantCol: "A", wantRow: "19"},
		{name: "middle", index: 9, wantCol: "J", wantRow: "10"},
		{name: "last", index: 18, wantCol: "S", wantRow: "1"},
		{name: "out of range", index: 19, wantCol: "", wantRow: ""},
		{name: "negative", index: -1, wantCol: "", wantRow: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ColumnLabel(test.index); got != test.wantCol {
				t.Errorf("ColumnLabel(%d) = %q, want %q", test.index, got, test.wantCol)
			}
			if got := RowLabel(test.index); got != test.wantRow {
				t.Errorf("RowLabel(%d) = %q, want %q", test.index, got, test.wantRow)
			}
		})
	}
}
