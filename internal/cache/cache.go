package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/placement-backend/internal/platform/logger"
)

// ErrNotConfigured means no REDIS_ADDR is set. Callers run without a cache;
// every read-through degrades to the database.
var ErrNotConfigured = errors.New("missing REDIS_ADDR")

type Service struct {
	log *logger.Logger
	rdb *goredis.Client
}

func New(log *logger.Logger) (*Service, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, ErrNotConfigured
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Service{log: log.With("service", "Cache"), rdb: rdb}, nil
}

// GetJSON loads key into out; ok is false on miss. A nil *Service always
// misses, so callers never branch on cache presence.
func (s *Service) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if s == nil || s.rdb == nil {
		return false, nil
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, ttl).Err()
}

func (s *Service) Delete(ctx context.Context, keys ...string) error {
	if s == nil || s.rdb == nil || len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *Service) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
