package database

import (
	"time"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"

	"github.com/allegro/bigcache/v3"
)

// ConnectInMemoryCache создаёт кеш неподтверждённых приветствий.
// Окно вытеснения длинное, но участник может висеть в ожидании и
// дольше: потеря записи не ломает подтверждение.
func ConnectInMemoryCache() *bigcache.BigCache {
	cache, err := bigcache.NewBigCache(bigcache.DefaultConfig(24 * time.Hour))
	if err != nil {
		logger.Crit(err)
	}
	return cache
}
