package cache

import "restapi/config"

// RedisRequestCacher keeps at most MaxNumber entries per key in a redis list,
// newest first.
type RedisRequestCacher struct {
	MaxNumber int
}

func CreateRedisCache(maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{MaxNumber: maxNumber}
}

func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := config.RedisClient.LPush(key, value)
	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := config.RedisClient.LTrim(key, 0, int64(cacher.MaxNumber-1))
	return trimCmd.Err()
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	return config.RedisClient.LRange(key, 0, int64(cacher.MaxNumber-1)).Result()
}
