package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"goban/internal/domain/match"
	"goban/internal/engine"
	errs "goban/internal/errors"
	"goban/internal/statuses"
)

// MatchStore persists engine snapshots for live matches and archive
// records for finished ones.
type MatchStore interface {
	SaveSnapshot(ctx context.Context, matchID string, snap engine.Snapshot) error
	LoadSnapshot(ctx context.Context, matchID string) (engine.Snapshot, error)
	DeleteSnapshot(ctx context.Context, matchID string) error
	ArchiveMatch(ctx context.Context, rec match.Archive) error
	GetArchivedMatch(ctx context.Context, matchID string) (match.Archive, error)
}

// MatchUseCase owns the live engine instances. Each match id maps to
// exactly one engine.Match; the engine itself is single-threaded, so
// every operation runs under the usecase lock. Matches evicted from
// memory (or served by another replica) are revived from their stored
// snapshot.
type MatchUseCase struct {
	store MatchStore

	mu     sync.Mutex
	active map[string]*engine.Match
}

func NewMatchUseCase(store MatchStore) *MatchUseCase {
	return &MatchUseCase{
		store:  store,
		active: make(map[string]*engine.Match),
	}
}

// CreateMatch starts a fresh match and returns its id.
func (u *MatchUseCase) CreateMatch(ctx context.Context) (string, error) {
	matchID := uuid.New().String()
	m := engine.NewMatch()

	if err := u.store.SaveSnapshot(ctx, matchID, m.Snapshot()); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCreateMatchFailed, err)
	}

	u.mu.Lock()
	u.active[matchID] = m
	u.mu.Unlock()

	return matchID, nil
}

// resolve returns the live engine for a match id, reviving it from the
// snapshot store when it is not in memory. Callers hold u.mu.
func (u *MatchUseCase) resolve(ctx context.Context, matchID string) (*engine.Match, error) {
	if m, ok := u.active[matchID]; ok {
		return m, nil
	}

	snap, err := u.store.LoadSnapshot(ctx, matchID)
	if err != nil {
		return nil, err
	}
	m, err := engine.RestoreMatch(snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSnapshotCorrupt, err)
	}

	u.active[matchID] = m
	return m, nil
}

// PlaceStone plays the current player's stone. It returns
// errs.ErrIllegalMove when the engine rejects the move; the match is
// unchanged in that case.
func (u *MatchUseCase) PlaceStone(ctx context.Context, matchID string, row, col int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, err := u.resolve(ctx, matchID)
	if err != nil {
		return err
	}

	if !m.PlaceStone(row, col) {
		return errs.ErrIllegalMove
	}

	return u.store.SaveSnapshot(ctx, matchID, m.Snapshot())
}

// Pass skips the current player's turn. The second consecutive pass
// ends the match and writes its archive record.
func (u *MatchUseCase) Pass(ctx context.Context, matchID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, err := u.resolve(ctx, matchID)
	if err != nil {
		return err
	}

	wasOver := m.GameOver()
	m.Pass()

	if err := u.store.SaveSnapshot(ctx, matchID, m.Snapshot()); err != nil {
		return err
	}

	if !wasOver && m.GameOver() {
		black, white := m.Scores()
		rec := match.Archive{
			MatchID:       matchID,
			Status:        statuses.StatusCompleted,
			FinishedAt:    time.Now(),
			BlackScore:    black,
			WhiteScore:    white,
			Winner:        winnerOf(black, white),
			FinalPosition: m.Snapshot(),
		}
		if err := u.store.ArchiveMatch(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns the match to its initial state. Valid in any state.
func (u *MatchUseCase) Reset(ctx context.Context, matchID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, err := u.resolve(ctx, matchID)
	if err != nil {
		return err
	}

	m.Reset()
	return u.store.SaveSnapshot(ctx, matchID, m.Snapshot())
}

// State projects the match into the render payload the front end
// consumes on every refresh.
func (u *MatchUseCase) State(ctx context.Context, matchID string) (match.StateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, err := u.resolve(ctx, matchID)
	if err != nil {
		return match.StateResponse{}, err
	}

	black, white := m.Captured()
	resp := match.StateResponse{
		MatchID:       matchID,
		Board:         m.BoardData(),
		CurrentPlayer: m.CurrentPlayer(),
		BlackCaptured: black,
		WhiteCaptured: white,
		GameOver:      m.GameOver(),
		ColumnLabels:  columnLabels,
		RowLabels:     rowLabels,
	}
	if p, ok := m.LastMove(); ok {
		resp.LastMove = &match.LastMove{Row: p.Row, Col: p.Col}
	}
	if m.GameOver() {
		blackScore, whiteScore := m.Scores()
		resp.Scores = &match.ScoresResponse{
			Black:  blackScore,
			White:  whiteScore,
			Winner: winnerOf(blackScore, whiteScore),
		}
	}
	return resp, nil
}

// Scores returns the final score of an ended match. Calling it on a
// running match is a caller error and reports ErrMatchInProgress.
func (u *MatchUseCase) Scores(ctx context.Context, matchID string) (match.ScoresResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, err := u.resolve(ctx, matchID)
	if err != nil {
		return match.ScoresResponse{}, err
	}
	if !m.GameOver() {
		return match.ScoresResponse{}, errs.ErrMatchInProgress
	}

	black, white := m.Scores()
	return match.ScoresResponse{
		Black:  black,
		White:  white,
		Winner: winnerOf(black, white),
	}, nil
}

// GetArchivedMatch looks up the stored record of a finished match.
func (u *MatchUseCase) GetArchivedMatch(ctx context.Context, matchID string) (match.Archive, error) {
	return u.store.GetArchivedMatch(ctx, matchID)
}

func winnerOf(black, white float64) string {
	switch {
	case black > white:
		return engine.Black.String()
	case white > black:
		return engine.White.String()
	}
	return "draw"
}

var (
	columnLabels = makeLabels(engine.ColumnLabel)
	rowLabels    = makeLabels(engine.RowLabel)
)

func makeLabels(label func(int) string) []string {
	labels := make([]string, engine.BoardSize)
	for i := range labels {
		labels[i] = label(i)
	}
	return labels
}
