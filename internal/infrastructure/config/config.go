package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Translation TranslationConfig `mapstructure:"translation"`
	Cache       CacheConfig       `mapstructure:"cache"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	MealDB      MealDBConfig      `mapstructure:"mealdb"`
	DedupWindow time.Duration     `mapstructure:"dedup_window"`
	LogLevel    string            `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// TranslationConfig 翻譯管線配置
type TranslationConfig struct {
	SourceLang    string        `mapstructure:"source_lang"`
	TargetLang    string        `mapstructure:"target_lang"`
	BatchSize     int           `mapstructure:"batch_size"`
	BatchDelay    time.Duration `mapstructure:"batch_delay"`
	RemoteEnabled bool          `mapstructure:"remote_enabled"`
	RemoteBaseURL string        `mapstructure:"remote_base_url"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout"`
}

// CacheConfig 翻譯快取配置
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	MaxSize int         `mapstructure:"max_size"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig 跨實例共享快取配置（可選）
type RedisConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// MealDBConfig 外部食譜搜尋服務配置
type MealDBConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	Limit   int    `mapstructure:"limit"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("translation.source_lang", "TRANSLATION_SOURCE_LANG")
	viper.BindEnv("translation.target_lang", "TRANSLATION_TARGET_LANG")
	viper.BindEnv("translation.remote_enabled", "TRANSLATION_REMOTE_ENABLED")
	viper.BindEnv("translation.remote_base_url", "TRANSLATION_REMOTE_BASE_URL")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.redis.enabled", "CACHE_REDIS_ENABLED")
	viper.BindEnv("cache.redis.addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("mealdb.enabled", "MEALDB_ENABLED")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration",
		"langpair:", viper.GetString("translation.source_lang")+"|"+viper.GetString("translation.target_lang"),
		"remote_enabled:", viper.GetBool("translation.remote_enabled"))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "pantry-assistant")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 翻譯管線設定
	// 批次大小 5 與批次間隔 500ms 對應遠端服務的免費額度限制
	viper.SetDefault("translation.source_lang", "en")
	viper.SetDefault("translation.target_lang", "fr")
	viper.SetDefault("translation.batch_size", 5)
	viper.SetDefault("translation.batch_delay", "500ms")
	viper.SetDefault("translation.remote_enabled", true)
	viper.SetDefault("translation.remote_base_url", "https://api.mymemory.translated.net")
	viper.SetDefault("translation.remote_timeout", "3s")

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 10000)
	viper.SetDefault("cache.redis.enabled", false)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.ttl", "24h")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 食譜搜尋設定
	viper.SetDefault("mealdb.enabled", true)
	viper.SetDefault("mealdb.base_url", "https://www.themealdb.com/api/json/v1/1")
	viper.SetDefault("mealdb.limit", 15)

	// 去重視窗預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證翻譯設定
	if config.Translation.SourceLang == "" || config.Translation.TargetLang == "" {
		return fmt.Errorf("translation language pair is required")
	}
	if config.Translation.BatchSize <= 0 {
		return fmt.Errorf("invalid translation batch size")
	}
	if config.Translation.RemoteTimeout <= 0 {
		return fmt.Errorf("invalid remote translation timeout")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.Redis.Enabled && config.Cache.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required when redis cache is enabled")
		}
	}

	return nil
}
