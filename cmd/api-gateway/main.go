package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-adp-views/api/swagger"
	"github.com/noah-isme/sma-adp-views/internal/handler"
	"github.com/noah-isme/sma-adp-views/internal/middleware"
	"github.com/noah-isme/sma-adp-views/internal/models"
	"github.com/noah-isme/sma-adp-views/internal/repository"
	"github.com/noah-isme/sma-adp-views/internal/service"
	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	"github.com/noah-isme/sma-adp-views/pkg/cache"
	"github.com/noah-isme/sma-adp-views/pkg/cdn"
	"github.com/noah-isme/sma-adp-views/pkg/config"
	"github.com/noah-isme/sma-adp-views/pkg/database"
	"github.com/noah-isme/sma-adp-views/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-adp-views/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-adp-views/pkg/middleware/requestid"
)

// @title Academic Records Views API
// @version 0.2.0
// @description Read-only detail views for classes, departments, subjects and faculty profiles
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()
	db, err := database.NewPostgres(connectCtx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()
	cacheRepo, readiness, closeCache := newCacheRepository(connectCtx, cfg, db, logr)
	defer closeCache()

	validate := validator.New()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Views.CacheTTL, logr, cfg.Views.CacheEnabled)
	viewSvc := service.NewViewService(service.ViewRepositories{
		Classes:     repository.NewClassRepository(db, metrics),
		Departments: repository.NewDepartmentRepository(db, metrics),
		Subjects:    repository.NewSubjectRepository(db, metrics),
		Faculty:     repository.NewFacultyRepository(db, metrics),
	}, newProjector(cfg.CDN, logr), cacheSvc, metrics, validate, logr, cfg.Views.CacheTTL, cfg.Database.StatementTimeout)

	viewHandler := handler.NewViewHandler(viewSvc, nil)
	if cfg.Exports.Enabled {
		viewHandler = handler.NewViewHandler(viewSvc, service.NewExportService(viewSvc, metrics, validate, logr))
	}
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/metrics", "/health", "/ready"))

	metricsHandler := handler.NewMetricsHandler(metrics, readiness...)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerViewRoutes(r.Group(cfg.APIPrefix), viewHandler, authSvc)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache_backend", cfg.Views.CacheBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
}

func registerViewRoutes(api *gin.RouterGroup, views *handler.ViewHandler, auth *service.AuthService) {
	group := api.Group("/views", middleware.JWT(auth), middleware.WithResponseMeta())

	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher)
	group.GET("/classes/:id", staff, views.Class)
	group.GET("/departments/:id", staff, views.Department)
	group.GET("/subjects/:id", staff, views.Subject)
	group.GET("/departments/:id/export", staff, views.Export(service.ResourceDepartments))
	group.GET("/subjects/:id/export", staff, views.Export(service.ResourceSubjects))

	self := middleware.RequireRolesOrSelf("id", models.RoleAdmin)
	group.GET("/faculty/:id", self, views.Faculty)
	group.GET("/faculty/:id/export", self, views.Export(service.ResourceFaculty))

	admin := middleware.RequireRoles(models.RoleAdmin)
	group.DELETE("/cache/:resource", admin, views.InvalidateCache)
	group.DELETE("/cache/:resource/:id", admin, views.InvalidateCache)
}

func newCacheRepository(ctx context.Context, cfg *config.Config, db *sqlx.DB, logr *zap.Logger) (service.CacheRepository, []handler.ReadinessCheck, func()) {
	readiness := []handler.ReadinessCheck{{Name: "postgres", Check: db.PingContext}}

	if cfg.Views.CacheBackend == config.CacheBackendMemory {
		repo, err := repository.NewMemoryCacheRepository(cfg.Views.MemoryCacheSize)
		if err != nil {
			logr.Fatal("failed to init memory cache", zap.Error(err))
		}
		return repo, readiness, func() { _ = repo.Close() }
	}

	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, view cache disabled", zap.Error(err))
		return nil, readiness, func() {}
	}
	repo := repository.NewCacheRepository(client, logr)
	readiness = append(readiness, handler.ReadinessCheck{Name: "redis", Check: cache.Pinger(client)})
	return repo, readiness, func() { _ = repo.Close() }
}

func newProjector(cfg config.CDNConfig, logr *zap.Logger) *viewmodel.Projector {
	banners := viewmodel.BannerResolver{CDNHost: cfg.Host}
	if cfg.CloudName != "" {
		transformer, err := cdn.New(cdn.Options{
			Host:          cfg.Host,
			CloudName:     cfg.CloudName,
			APIKey:        cfg.APIKey,
			BannerWidth:   cfg.BannerWidth,
			BannerHeight:  cfg.BannerHeight,
			SigningSecret: cfg.SigningSecret,
		})
		if err != nil {
			logr.Warn("banner transformations disabled", zap.Error(err))
		} else {
			banners.Transformer = transformer
		}
	}
	return viewmodel.NewProjector(viewmodel.ProjectorConfig{
		Banners:        banners,
		PlaceholderURL: cfg.PlaceholderURL,
	})
}
