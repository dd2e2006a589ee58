package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pizzabot/internal/agent"
	"pizzabot/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pizzabot:session:"

var _ agent.SessionStore = (*RedisStore)(nil)

// RedisStore keeps each session as a JSON value that expires ttl after its last save.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) (*RedisStore, error) {
	if isNilClient(client) {
		return nil, errs.NewValueIsRequiredError("redis client")
	}
	if ttl < 0 {
		return nil, errs.NewValueIsOutOfRangeError("session ttl", ttl, 0, "unbounded")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (agent.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return agent.Session{ID: id}, nil
	}
	if err != nil {
		return agent.Session{}, fmt.Errorf("load session %s: %w", id, err)
	}

	var session agent.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return agent.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	session.ID = id
	return session, nil
}

func (s *RedisStore) Save(ctx context.Context, session agent.Session) error {
	if session.ID == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, keyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// isNilClient also catches nil client pointers stored in the interface.
func isNilClient(client redis.Cmdable) bool {
	switch c := client.(type) {
	case nil:
		return true
	case *redis.Client:
		return c == nil
	case *redis.ClusterClient:
		return c == nil
	case *redis.Ring:
		return c == nil
	}
	return false
}

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
