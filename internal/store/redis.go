package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"heatpump_check/internal/model"
)

// KeyPrefix namespaces catalog overrides in Redis.
const KeyPrefix = "heatpump_check:catalog:"

// RedisStore keeps catalog overrides in Redis as JSON documents.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

var _ CatalogStore = (*RedisStore)(nil)

// RedisConfig holds the connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL expires overrides after inactivity; zero keeps them forever.
	TTL time.Duration
}

func NewRedisStore(cfg RedisConfig, log *logrus.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, ttl: cfg.TTL, log: log}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis at %s: %w", s.client.Options().Addr, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, user string) ([]model.Intervention, error) {
	data, err := s.client.Get(ctx, Key(user)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading overrides for %q: %w", user, err)
	}

	ov, err := decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("decoding overrides for %q: %w", user, err)
	}
	return ov, nil
}

func (s *RedisStore) Put(ctx context.Context, user string, overrides []model.Intervention) error {
	if normalizeUser(user) == "" {
		return errors.New("user must not be empty")
	}
	data, err := encode(overrides)
	if err != nil {
		return fmt.Errorf("encoding overrides for %q: %w", user, err)
	}
	if err := s.client.Set(ctx, Key(user), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing overrides for %q: %w", user, err)
	}
	if s.log != nil {
		s.log.WithFields(logrus.Fields{"user": normalizeUser(user), "entries": len(overrides)}).Debug("Stored catalog overrides")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, user string) error {
	n, err := s.client.Del(ctx, Key(user)).Result()
	if err != nil {
		return fmt.Errorf("deleting overrides for %q: %w", user, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Key returns the Redis key holding a user's overrides.
func Key(user string) string {
	return KeyPrefix + normalizeUser(user)
}

func encode(overrides []model.Intervention) ([]byte, error) {
	ov := clone(overrides)
	sort.Slice(ov, func(i, j int) bool { return ov[i].ID < ov[j].ID })
	return json.Marshal(ov)
}

func decode(data []byte) ([]model.Intervention, error) {
	var ov []model.Intervention
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	return clone(ov), nil
}
