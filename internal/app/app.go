package app

import (
	"fmt"

	"go-hr-portal/internal/bootstrap"
	"go-hr-portal/internal/config"
	"go-hr-portal/internal/shared/connection"
	"go-hr-portal/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module on router.
// The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg *config.Config, auditLogger bootstrap.AuditLogger, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.MigrateOnStart {
		if err := connection.Migrate(cfg.Database, logger); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries, logger)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if redisClient != nil {
		logger.Info("Redis connection established")
	} else {
		logger.Info("Redis not configured, idempotency keys are ignored")
	}

	store, err := storage.NewOSStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes, logger)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	registerModules(router, modules{
		cfg:    cfg,
		gormDB: gormDB,
		sqlDB:  sqlDB,
		rdb:    redisClient,
		store:  store,
		audit:  auditLogger,
		logger: logger,
	})

	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
