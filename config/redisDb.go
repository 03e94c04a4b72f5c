package config

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var (
	rdb    *redis.Client
	locker *redislock.Client
)

func GetRedisDB() *redis.Client {
	return rdb
}

// GetRedisLock returns the advisory lock client, or nil when redis is not
// configured. Callers must treat the lock as a best-effort optimization; the
// unique index on ativo_resultado_inv is the real finalization guard.
func GetRedisLock() *redislock.Client {
	return locker
}

// ConnectRedis wires the optional redis client. REDIS_ADDRESS empty means the
// service runs without advisory locking.
func ConnectRedis() {
	address := strings.TrimSpace(os.Getenv("REDIS_ADDRESS"))
	if address == "" {
		log.Printf("REDIS_ADDRESS not set; finalize advisory locking disabled")
		return
	}

	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis not reachable (%v); finalize advisory locking disabled", err)
		return
	}

	rdb = client
	locker = redislock.New(client)
	log.Printf("connected to redis at %s", address)
}
