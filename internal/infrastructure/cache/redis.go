package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"therapist-match/internal/config"
	"therapist-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessions keeps session records in Redis, one key per user. When Redis
// is unreachable at startup the store reports itself unavailable so the
// container can fall back to an in-memory store.
type RedisSessions struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedisSessions(cfg config.RedisConfig, logger *log.Logger) *RedisSessions {
	if cfg.Host == "" {
		return &RedisSessions{client: nil, logger: logger}
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Sessions] Redis unavailable | addr=%s err=%v", addr, err)
		}
		_ = client.Close()
		return &RedisSessions{client: nil, logger: logger}
	}

	return &RedisSessions{client: client, logger: logger}
}

func (r *RedisSessions) Available() bool {
	return r != nil && r.client != nil
}

func (r *RedisSessions) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Sessions] Redis unavailable, sessions will not persist: %v", err)
	}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (r *RedisSessions) Save(ctx context.Context, s usecase.Session) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := r.client.Set(ctx, sessionKey(s.User.ID), b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *RedisSessions) Find(ctx context.Context, userID uuid.UUID) (usecase.Session, bool, error) {
	if !r.Available() {
		return usecase.Session{}, false, errors.New("redis unavailable")
	}
	b, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return usecase.Session{}, false, nil
		}
		r.warnUnavailableOnce(err)
		return usecase.Session{}, false, err
	}

	var s usecase.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return usecase.Session{}, false, err
	}
	if time.Now().After(s.ExpiresAt) {
		_ = r.client.Del(ctx, sessionKey(userID)).Err()
		return usecase.Session{}, false, nil
	}
	return s, true, nil
}

func (r *RedisSessions) Delete(ctx context.Context, userID uuid.UUID) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *RedisSessions) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
