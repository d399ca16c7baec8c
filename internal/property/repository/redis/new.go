package redis

import (
	"rentdesk-srv/internal/property/repository"
	"rentdesk-srv/pkg/log"
	pkgRedis "rentdesk-srv/pkg/redis"
)

type implRepository struct {
	client pkgRedis.IRedis
	l      log.Logger
}

// New - Factory function
func New(client pkgRedis.IRedis, l log.Logger) repository.RedisRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
