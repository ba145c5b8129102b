package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/studio-catalog/api/swagger"
	"github.com/noah-isme/studio-catalog/internal/handler"
	"github.com/noah-isme/studio-catalog/internal/middleware"
	"github.com/noah-isme/studio-catalog/internal/repository"
	"github.com/noah-isme/studio-catalog/internal/service"
	"github.com/noah-isme/studio-catalog/pkg/cache"
	"github.com/noah-isme/studio-catalog/pkg/config"
	"github.com/noah-isme/studio-catalog/pkg/database"
	"github.com/noah-isme/studio-catalog/pkg/logger"
	corsmiddleware "github.com/noah-isme/studio-catalog/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/studio-catalog/pkg/middleware/requestid"
)

// @title Studio Catalog API
// @version 1.0.0
// @description Read-only catalog of studio activities and teachers
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()
	validate := validator.New()
	activityRepo := repository.NewActivityQueryRepository(db, validate, metricsSvc, logr)
	teacherRepo := repository.NewTeacherQueryRepository(db, validate, metricsSvc, logr)

	var publisher service.SnapshotPublisher
	if cfg.Snapshots.Enabled {
		redisClient, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect to redis", zap.Error(err))
		}
		snapshots := repository.NewSnapshotPublisher(redisClient, cfg.Snapshots.ChannelPrefix, logr)
		defer snapshots.Close() //nolint:errcheck
		publisher = snapshots
		logr.Info("snapshot publishing enabled", zap.String("channel_prefix", cfg.Snapshots.ChannelPrefix))
	}

	catalogSvc := service.NewCatalogService(activityRepo, teacherRepo, publisher, metricsSvc, logr)
	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(cfg.Export.Title)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterOpsRoutes(r, handler.NewMetricsHandler(metricsSvc, db))
	handler.RegisterCatalogRoutes(
		r.Group(cfg.APIPrefix),
		handler.NewActivityHandler(catalogSvc, exportSvc, logr),
		handler.NewTeacherHandler(catalogSvc, logr),
	)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "api_prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
