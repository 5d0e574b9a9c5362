package engine

import "testing"

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewMatch()
	mustPlace(t, m, 3, 3)
	mustPlace(t, m, 3, 4)
	m.Pass()

	restored, err := RestoreMatch(m.Snapshot())
	if err != nil {
		t.Fatalf("RestoreMatch failed: %v", err)
	}

	if restored.Snapshot() != m.Snapshot() {
		t.Error("restored snapshot differs from the original")
	}
	if restored.CurrentPlayer() != m.CurrentPlayer() {
		t.Error("restored match has a different player to move")
	}

	// The restored match keeps playing by the same rules: one more
	// pass ends it.
	restored.Pass()
	if !restored.GameOver() {
		t.Error("restored pass count lost, second pass did not end the match")
	}
}

func TestSnapshotFreshMatch(t *testing.T) {
	s := NewMatch().Snapshot()
	if s.LastMoveRow != -1 || s.LastMoveCol != -1 {
		t.Errorf("fresh snapshot last move = (%d,%d), want (-1,-1)", s.LastMoveRow, s.LastMoveCol)
	}
	if s.CurrentPlayer != Black {
		t.Errorf("fresh snapshot player = %v, want black", s.CurrentPlayer)
	}
	if s.GameOver {
		t.Error("fresh snapshot is marked game over")
	}
}

func TestRestoreMatchRejectsBadSnapshots(t *testing.T) {
	valid := NewMatch().Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{
			name:   "board too short",
			mutate: func(s *Snapshot) { s.Board = s.Board[:100] },
		},
		{
			name:   "invalid cell",
			mutate: func(s *Snapshot) { s.Board = "x" + s.Board[1:] },
		},
		{
			name:   "empty current player",
			mutate: func(s *Snapshot) { s.CurrentPlayer = Empty },
		},
		{
			name:   "last move off the board",
			mutate: func(s *Snapshot) { s.LastMoveRow, s.LastMoveCol = 19, 19 },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := valid
			test.mutate(&s)
			if _, err := RestoreMatch(s); err == nil {
				t.Error("RestoreMatch accepted a corrupt snapshot")
			}
		})
	}
}

func TestDecodeBoardRoundTrip(t *testing.T) {
	b := boardWith(map[Point]Stone{{0, 0}: Black, {18, 18}: White, {9, 9}: Black})
	decoded, err := DecodeBoard(b.Encode())
	if err != nil {
		t.Fatalf("DecodeBoard failed: %v", err)
	}
	if decoded != b {
		t.Error("decoded board differs from the original")
	}
}
