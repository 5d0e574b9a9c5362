package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/match"
	"goban/internal/engine"
	errs "goban/internal/errors"
)

const archiveCollection = "matches"

// MatchRepository keeps live match snapshots in Redis, keyed by match
// id, and finished matches in Mongo.
type MatchRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewMatchRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *MatchRepository {
	return &MatchRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func (r *MatchRepository) snapshotTTL() time.Duration {
	return time.Duration(r.cfg.SnapshotTTLHours) * time.Hour
}

func (r *MatchRepository) SaveSnapshot(ctx context.Context, matchID string, snap engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.redis.Set(ctx, snapshotKey(matchID), data, r.snapshotTTL()).Err(); err != nil {
		r.log.Errorf("failed to save snapshot for match %s: %v", matchID, err)
		return err
	}
	return nil
}

func (r *MatchRepository) LoadSnapshot(ctx context.Context, matchID string) (engine.Snapshot, error) {
	var snap engine.Snapshot

	data, err := r.redis.Get(ctx, snapshotKey(matchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return snap, errs.ErrMatchNotFound
		}
		r.log.Errorf("failed to load snapshot for match %s: %v", matchID, err)
		return snap, err
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		r.log.Errorf("snapshot for match %s does not parse: %v", matchID, err)
		return snap, errs.ErrSnapshotCorrupt
	}
	return snap, nil
}

func (r *MatchRepository) DeleteSnapshot(ctx context.Context, matchID string) error {
	return r.redis.Del(ctx, snapshotKey(matchID)).Err()
}

func snapshotKey(matchID string) string {
	return "match:" + matchID
}

func (r *MatchRepository) ArchiveMatch(ctx context.Context, rec match.Archive) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.mongo.Collection(archiveCollection).InsertOne(ctx, rec); err != nil {
		r.log.Errorf("failed to archive match %s: %v", rec.MatchID, err)
		return err
	}

	r.log.Infof("match %s archived with result %s", rec.MatchID, rec.Winner)
	return nil
}

func (r *MatchRepository) GetArchivedMatch(ctx context.Context, matchID string) (match.Archive, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec match.Archive
	err := r.mongo.Collection(archiveCollection).
		FindOne(ctx, bson.M{"match_id": matchID}).
		Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, errs.ErrMatchNotFound
	} else if err != nil {
		r.log.Error(err)
		return rec, err
	}

	return rec, nil
}
