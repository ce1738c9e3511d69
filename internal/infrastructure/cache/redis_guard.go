package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

const guardReleaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisDispatchGuard claims side-effect keys with SET NX so concurrent
// instances do not fire the same dispatch twice. Release only deletes keys
// this guard still owns.
type RedisDispatchGuard struct {
	client *redis.Client
	script *redis.Script
	owner  string
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func NewRedisDispatchGuard(client *redis.Client) *RedisDispatchGuard {
	if client == nil {
		return nil
	}
	return &RedisDispatchGuard{
		client: client,
		script: redis.NewScript(guardReleaseScript),
		owner:  uuid.NewString(),
	}
}

func (g *RedisDispatchGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, errors.New("guard key is empty")
	}
	if ttl <= 0 {
		return false, errors.New("guard ttl must be positive")
	}
	return g.client.SetNX(ctx, key, g.owner, ttl).Result()
}

func (g *RedisDispatchGuard) Release(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return g.script.Run(ctx, g.client, []string{key}, g.owner).Err()
}
