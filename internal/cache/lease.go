package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lease is a best-effort mutual exclusion across processes, held for at
// most ttl.
type Lease struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewLease(rdb *redis.Client, key string, ttl time.Duration) *Lease {
	return &Lease{rdb: rdb, key: key, ttl: ttl}
}

// Acquire returns a release func when the lease was obtained, or ok=false
// when another holder has it.
func (l *Lease) Acquire(ctx context.Context) (release func(), ok bool, err error) {
	token := uuid.NewString()

	ok, err = l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lease %s: %w", l.key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.rdb, []string{l.key}, token).Err()
	}
	return release, true, nil
}
