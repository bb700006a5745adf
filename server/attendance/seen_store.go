package attendance

import "fmt"
import "log"
import "time"
import "github.com/go-redis/redis"
import "github.com/gymadmin/api/server/env"

const (
	seenPrefix = "gymadmin_seen"
	seenTTL    = time.Hour * 24
)

// SeenStore remembers which scan events were already processed.
type SeenStore interface {
	Observe(key string) (bool, error)
	Purge() error
}

type redisSeen struct {
	client *redis.Client
}

func (r *redisSeen) keyForEvent(key string) string {
	return fmt.Sprintf("%s:event:%s", seenPrefix, key)
}

// Observe marks the key as seen, reporting whether it was new.
func (r *redisSeen) Observe(key string) (bool, error) {
	result := r.client.SetNX(r.keyForEvent(key), "1", seenTTL)

	fresh, e := result.Result()

	if e != nil {
		log.Printf("unable to mark event '%s' as seen: %s", key, e)
		return false, e
	}

	return fresh, nil
}

// Purge destroys all seen-event markers.
func (r *redisSeen) Purge() error {
	log.Printf("purging all seen events")
	keyCommand := redis.NewStringSliceCmd("KEYS", fmt.Sprintf("%s*", seenPrefix))

	if e := r.client.Process(keyCommand); e != nil {
		log.Printf("failed preparing %s: %s", keyCommand, e)
		return e
	}

	keys, e := keyCommand.Result()

	if e != nil {
		log.Printf("failed execution %s: %s", keyCommand, e)
		return e
	}

	if len(keys) == 0 {
		log.Printf("no seen events to delete")
		return nil
	}

	if e := r.client.Del(keys...).Err(); e != nil {
		log.Printf("failed deleting seen events: %s", e)
		return e
	}

	log.Printf("purged seen events: %v", keys)
	return nil
}

// NewRedisSeenStore connects to redis and returns a SeenStore backed by it.
func NewRedisSeenStore(options env.ServerConfig) (SeenStore, error) {
	client := redis.NewClient(&options.Redis)

	result := client.Ping()

	if e := result.Err(); e != nil {
		return nil, e
	}

	log.Printf("successfully pinged redis server '%s'", result.String())

	return &redisSeen{client: client}, nil
}
