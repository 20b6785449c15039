package rosters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
)

const (
	rosterKeyPrefix = "roster:"
	ownerKeyFormat  = "owner:%s:rosters"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider  // Optional: defaults to wall clock
	TTL          time.Duration // Zero keeps rosters until deleted
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a Redis-backed roster repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          cfg.TTL,
	}
}

func rosterKey(id string) string {
	return rosterKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf(ownerKeyFormat, ownerID)
}

// set writes the roster and refreshes the owner index. Both keys share the
// roster TTL so an idle session expires as a whole.
func (r *redisRepo) set(ctx context.Context, ros *roster.Roster) error {
	jsonData, err := json.Marshal(toData(ros))
	if err != nil {
		return armyerr.Wrap(err, "failed to marshal roster data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, rosterKey(ros.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, ownerKey(ros.OwnerID), ros.ID)
	if r.ttl > 0 {
		pipe.Expire(ctx, ownerKey(ros.OwnerID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return armyerr.Wrap(err, "failed to save roster to Redis")
	}

	return nil
}

func (r *redisRepo) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, rosterKey(id)).Result()
	if err != nil {
		return false, armyerr.Wrap(err, "failed to check roster existence")
	}
	return n > 0, nil
}

// Create stores a new roster
func (r *redisRepo) Create(ctx context.Context, ros *roster.Roster) error {
	if ros == nil {
		return armyerr.InvalidArgument("roster cannot be nil")
	}
	if ros.ID == "" {
		return armyerr.InvalidArgument("roster ID cannot be empty")
	}

	found, err := r.exists(ctx, ros.ID)
	if err != nil {
		return err
	}
	if found {
		return armyerr.AlreadyExistsf("roster %s already exists", ros.ID)
	}

	now := r.timeProvider.Now()
	ros.CreatedAt = now
	ros.UpdatedAt = now

	return r.set(ctx, ros)
}

// Get retrieves a roster by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*roster.Roster, error) {
	if id == "" {
		return nil, armyerr.InvalidArgument("roster ID cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, rosterKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, armyerr.NotFoundf("roster %s not found", id)
		}
		return nil, armyerr.Wrap(err, "failed to get roster from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, armyerr.Wrap(err, "failed to unmarshal roster data")
	}

	return fromData(&data), nil
}

// Update replaces an existing roster and refreshes its TTL
func (r *redisRepo) Update(ctx context.Context, ros *roster.Roster) error {
	if ros == nil {
		return armyerr.InvalidArgument("roster cannot be nil")
	}

	found, err := r.exists(ctx, ros.ID)
	if err != nil {
		return err
	}
	if !found {
		return armyerr.NotFoundf("roster %s not found", ros.ID)
	}

	ros.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, ros)
}

// Delete removes a roster and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	ros, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, rosterKey(id))
	pipe.SRem(ctx, ownerKey(ros.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return armyerr.Wrap(err, "failed to delete roster from Redis")
	}

	return nil
}

// ListByOwner retrieves every live roster of an owner. Index entries whose
// roster has expired are skipped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*roster.Roster, error) {
	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, armyerr.Wrap(err, "failed to get owner rosters from Redis")
	}

	found := make([]*roster.Roster, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			ros, err := r.Get(ctx, id)
			if err != nil {
				if armyerr.IsNotFound(err) {
					log.Printf("Skipping expired roster %s in index of owner %s", id, ownerID)
					return nil
				}
				return armyerr.Wrapf(err, "failed to get roster %s", id)
			}
			found[i] = ros
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*roster.Roster, 0, len(found))
	for _, ros := range found {
		if ros != nil {
			out = append(out, ros)
		}
	}

	return out, nil
}
