package api

import (
	"context"
	"net/http"
	"time"

	"pantry-assistant/internal/api/handlers/health"
	pantryHandler "pantry-assistant/internal/api/handlers/pantry"
	"pantry-assistant/internal/api/middleware"
	"pantry-assistant/internal/core/mealdb"
	"pantry-assistant/internal/core/pantry"
	"pantry-assistant/internal/core/translation"
	"pantry-assistant/internal/core/translation/cache"
	"pantry-assistant/internal/core/translation/remote"
	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求整體超時：批次翻譯受批間延遲拖長，給足餘裕
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (1MB)，純文字請求不需要更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("redis_enabled", cfg.Cache.Redis.Enabled),
		zap.Bool("remote_enabled", cfg.Translation.RemoteEnabled),
		zap.Bool("mealdb_enabled", cfg.MealDB.Enabled),
	)

	// 初始化遠端翻譯客戶端
	var remoteClient remote.Translator
	if cfg.Translation.RemoteEnabled {
		remoteClient = remote.NewClient(cfg)
	}

	// 初始化翻譯協調器
	translationService := translation.NewService(cfg, store, remoteClient)

	// 初始化可做性引擎
	engine := pantry.NewEngine()

	// 初始化外部食譜客戶端
	var mealdbClient *mealdb.Client
	if cfg.MealDB.Enabled {
		mealdbClient = mealdb.NewClient(cfg)
	}

	// 全局中間件：設置超時與服務注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("translation_service", translationService)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		// 翻譯相關路由
		translateGroup := api.Group("/translate")
		{
			translateGroup.POST("", pantryHandler.HandleTranslate(translationService))
			translateGroup.GET("/cache/stats", pantryHandler.HandleCacheStats(translationService))
			translateGroup.POST("/cache/clear", pantryHandler.HandleCacheClear(translationService))
		}

		// 食譜相關路由
		recipesGroup := api.Group("/recipes")
		{
			recipesGroup.POST("/availability", pantryHandler.HandleAvailability(engine))

			// 外部食譜搜尋需要 MealDB 啟用
			if mealdbClient != nil {
				recipesGroup.POST("/search", pantryHandler.HandleSearch(mealdbClient, translationService, engine))
			}
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("mealdb_enabled", mealdbClient != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
