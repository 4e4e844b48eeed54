package repository

import (
	"context"
	"fmt"
	"log"

	appConfig "github.com/mansoorceksport/kinetic/internal/config"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Clients are the network connections opened by the caller.
// Either may be nil when the configuration does not use it.
type Clients struct {
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// OpenStore builds the key-value store selected by cfg.Storage.Driver,
// wrapped with the Redis cache and key prefix when configured. The returned
// close func releases embedded databases and is never nil.
func OpenStore(ctx context.Context, cfg *appConfig.Config, clients Clients) (domain.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	var (
		store   domain.KeyValueStore
		closeFn = noop
	)

	switch cfg.Storage.Driver {
	case appConfig.DriverMemory:
		store = NewMemoryStore()
	case appConfig.DriverSQLite:
		s, err := OpenSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		store, closeFn = s, s.Close
	case appConfig.DriverBadger:
		s, err := OpenBadgerStore(BadgerConfig{Path: cfg.Storage.BadgerPath})
		if err != nil {
			return nil, noop, err
		}
		store, closeFn = s, s.Close
	case appConfig.DriverRedis:
		if clients.RedisClient == nil {
			return nil, noop, fmt.Errorf("redis driver selected without a redis client")
		}
		store = NewRedisStore(clients.RedisClient)
	case appConfig.DriverMongo:
		if clients.MongoDB == nil {
			return nil, noop, fmt.Errorf("mongo driver selected without a database")
		}
		store = NewMongoStore(clients.MongoDB)
	case appConfig.DriverS3:
		s, err := NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		store = s
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	remote := cfg.Storage.Driver == appConfig.DriverMongo || cfg.Storage.Driver == appConfig.DriverS3
	if cfg.Storage.CacheEnabled && remote && clients.RedisClient != nil {
		store = NewCachedStore(store, NewRedisStore(clients.RedisClient), cfg.Storage.CacheTTL())
		log.Println("✓ Redis cache enabled for storage")
	}

	log.Printf("✓ Storage ready (driver: %s)", cfg.Storage.Driver)
	return WithPrefix(store, cfg.Storage.KeyPrefix), closeFn, nil
}
