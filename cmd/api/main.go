package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/auth"
	"studyplanner/internal/adapter/cache"
	dbadapter "studyplanner/internal/adapter/db"
	httpadapter "studyplanner/internal/adapter/http"
	"studyplanner/internal/adapter/http/handlers"
	httpmiddleware "studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/app/service"
	"studyplanner/internal/config"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageJa, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	location := cfg.Location()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	var profileRepository ports.ProfileRepository = dbadapter.NewProfileRepository(db)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewRedisClient(cache.RedisConfig{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, profile cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("failed to close redis connection", zap.Error(err))
				}
			}()
			profileRepository = cache.NewProfileCache(profileRepository, redisClient, cfg.ProfileCacheTTL)
		}
	}

	verifier, err := auth.NewJWTVerifier(auth.JWTVerifierConfig{
		Secret:   cfg.JWTSecret,
		Audience: cfg.JWTAudience,
		Leeway:   cfg.JWTLeeway,
	}, time.Now)
	if err != nil {
		logger.Fatal("failed to configure token verifier", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	testPeriodRepository := dbadapter.NewTestPeriodRepository(db)

	profileService := service.NewProfileService(verifier, profileRepository)
	taskService := service.NewTaskService(taskRepository, testPeriodRepository, profileRepository, time.Now)
	statsService := service.NewStatsService(taskRepository, time.Now, location)
	testPeriodService := service.NewTestPeriodService(testPeriodRepository, time.Now)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestID(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r, profileService, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db, redisClient, location),
		Profile:    handlers.NewProfileHandler(profileService),
		Task:       handlers.NewTaskHandler(taskService, location),
		Stats:      handlers.NewStatsHandler(statsService),
		TestPeriod: handlers.NewTestPeriodHandler(testPeriodService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("timezone", location.String()))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
