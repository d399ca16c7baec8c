package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Config is the connection setup for the list-page cache.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	// PoolSize caps open connections. Zero keeps the go-redis default.
	PoolSize int
}

// Addr returns host:port.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type redisImpl struct {
	client *goredis.Client
}
