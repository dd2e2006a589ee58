package sessions_test

import (
	"testing"
	"time"

	"pizzabot/internal/adapters/out/sessions"
	"pizzabot/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStore(t *testing.T) {
	var nilClient *redis.Client
	var nilCluster *redis.ClusterClient

	tests := []struct {
		name    string
		client  redis.Cmdable
		ttl     time.Duration
		wantErr error
	}{
		{name: "nil interface", client: nil, ttl: time.Hour, wantErr: errs.ErrValueIsRequired},
		{name: "nil client pointer", client: nilClient, ttl: time.Hour, wantErr: errs.ErrValueIsRequired},
		{name: "nil cluster pointer", client: nilCluster, ttl: time.Hour, wantErr: errs.ErrValueIsRequired},
		{name: "negative ttl", client: redis.NewClient(&redis.Options{Addr: "localhost:6379"}), ttl: -time.Second, wantErr: errs.ErrValueIsOutOfRange},
		{name: "no expiry", client: redis.NewClient(&redis.Options{Addr: "localhost:6379"}), ttl: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := sessions.NewRedisStore(tt.client, tt.ttl)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
