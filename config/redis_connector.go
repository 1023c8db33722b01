package config

import (
	"os"

	"gopkg.in/redis.v5"
)

var RedisClient *redis.Client

// SetupRedis connects the shared client to the instance named by REDIS_URL.
func SetupRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_URL"),
	})
}
