package persistence

import (
	"time"

	"parley/sources/tracing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewSqliteDatabase(config *DatabaseConfig, log *tracing.Logger) *gorm.DB {
	gormlogger := logger.New(
		&gormtracer{logger: log},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{Logger: gormlogger})
	if err != nil {
		log.F("Failed to open database", tracing.InnerError, err)
	}

	sqldb, err := db.DB()
	if err != nil {
		log.F("Failed to get underlying sql.DB", tracing.InnerError, err)
	}

	// SQLite writes serialize on a single connection.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetConnMaxLifetime(2 * time.Hour)

	log.I("Database initialized successfully")
	return db
}
