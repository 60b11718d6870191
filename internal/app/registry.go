package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-hr-portal/internal/bootstrap"
	"go-hr-portal/internal/config"
	"go-hr-portal/internal/employee"
	"go-hr-portal/internal/middleware"
	"go-hr-portal/internal/request"
	"go-hr-portal/internal/storage"
	"go-hr-portal/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type modules struct {
	cfg    *config.Config
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
	store  *storage.LocalStore
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func registerModules(router *gin.Engine, m modules) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(m.logger),
		middleware.Tenant(m.cfg.App.CompanyID),
	)

	// --- Repositories ---
	requestRepo := request.NewRepository(m.gormDB)
	employeeRepo := employee.NewRepository(m.gormDB)

	// --- Services ---
	requestService := request.NewService(requestRepo, m.audit, m.logger)
	employeeService := employee.NewService(employeeRepo, m.store, m.logger)

	// --- Handlers ---
	requestHandler := request.NewHandler(requestService, m.logger)
	employeeHandler := employee.NewHandler(employeeService, m.logger)
	uploadHandler := upload.NewHandler(m.store, m.logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		upload.RegisterRoutes(api, uploadHandler)
		request.RegisterRoutes(api, requestHandler, middleware.Idempotency(m.rdb, m.logger))
		employee.RegisterRoutes(api, employeeHandler, middleware.AuthMiddleware(m.cfg.Auth.JWTSecret))
	}

	router.StaticFS(m.cfg.Upload.URLPrefix, m.store.FileSystem())
	router.GET("/healthz", healthz(m.sqlDB))
}

func healthz(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			zap.L().Named("app.health").Warn("store ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
