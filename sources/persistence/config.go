package persistence

import (
	"time"

	"parley/sources/platform"
)

type DatabaseConfig struct {
	Path string
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Path: platform.Get("SQLITE_PATH", "parley.db"),
	}
}

func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:        platform.Get("REDIS_HOST", "redis"),
		Port:        platform.GetAsInt("REDIS_PORT", 6379),
		Password:    platform.Get("REDIS_PASSWORD", ""),
		DB:          platform.GetAsInt("REDIS_DB", 0),
		MaxRetries:  platform.GetAsInt("REDIS_MAX_RETRIES", 5),
		DialTimeout: platform.GetAsDuration("REDIS_DIAL_TIMEOUT", "5s"),
	}
}
