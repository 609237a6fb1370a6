package persistence

import (
	"context"

	"parley/sources/persistence/entities"
	"parley/sources/tracing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("persistence",
	fx.Provide(
		NewDatabaseConfig, NewSqliteDatabase,
		NewRedisConfig, NewRedis,
	),

	fx.Invoke(func(db *gorm.DB, redis *redis.Client, lc fx.Lifecycle, log *tracing.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := db.AutoMigrate(&entities.User{}, &entities.Message{}); err != nil {
					log.F("Failed to migrate schema", tracing.InnerError, err)
				} else {
					log.I("Schema migrated successfully")
				}

				if sqlDB, err := db.DB(); err != nil {
					log.F("Failed to get underlying sql.DB", tracing.InnerError, err)
				} else if err := sqlDB.PingContext(ctx); err != nil {
					log.F("Failed to ping SQLite", tracing.InnerError, err)
				} else {
					log.I("SQLite connection verified")
				}

				if err := redis.Ping(ctx).Err(); err != nil {
					log.F("Failed to ping Redis", tracing.InnerError, err)
				} else {
					log.I("Redis connection verified")
				}

				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.I("Closing database connections")

				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				} else {
					log.E("Failed to close SQLite", tracing.InnerError, err)
				}

				redis.Close()

				return nil
			},
		})
	}),
)
