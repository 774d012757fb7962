package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Log       LogConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时信息（非配置文件）
	ConfigFile string `mapstructure:"-"` // 实际加载的配置文件，未找到时为空
}

type ServerConfig struct {
	Port          string
	Mode          string
	DefaultLocale string `mapstructure:"default_locale"`
}

// AIConfig 生成服务配置。APIKey 为空时使用模拟数据。
type AIConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	Model         string        `mapstructure:"model"`
	Temperature   float32       `mapstructure:"temperature"`
	MockDelay     time.Duration `mapstructure:"mock_delay"`
	RequireAPIKey bool          `mapstructure:"require_api_key"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.default_locale", "en")

	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.mock_delay", "1500ms")
	v.SetDefault("ai.require_api_key", false)

	v.SetDefault("log.file", "logs/app.log")

	v.SetDefault("tracing.enabled", false)

	v.SetDefault("rate_limit.max_requests", 60)
	v.SetDefault("rate_limit.window_minutes", 1)
}

// LoadConfig 从目录 path 读取 config.yaml，环境变量优先。配置文件不存在时只使用默认值与环境变量。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PATHFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.mode", "PATHFINDER_SERVER_MODE", "SERVER_MODE")
	v.BindEnv("server.port", "PATHFINDER_SERVER_PORT", "SERVER_PORT", "PORT")

	// AI
	v.BindEnv("ai.api_key", "PATHFINDER_AI_API_KEY", "GEMINI_API_KEY", "API_KEY")
	v.BindEnv("ai.model", "PATHFINDER_AI_MODEL", "AI_MODEL")

	// Tracing
	v.BindEnv("tracing.enabled", "PATHFINDER_TRACING_ENABLED", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "PATHFINDER_TRACING_COLLECTOR_ENDPOINT", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.AI.APIKey = strings.TrimSpace(cfg.AI.APIKey)

	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return nil, fmt.Errorf("ai.temperature must be within [0, 2], got %v", cfg.AI.Temperature)
	}
	if cfg.AI.MockDelay < 0 {
		return nil, fmt.Errorf("ai.mock_delay must not be negative, got %s", cfg.AI.MockDelay)
	}
	if cfg.AI.RequireAPIKey && cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("ai.require_api_key is set but no API key is configured")
	}

	return &cfg, nil
}

// Window 限流窗口
func (c RateLimitConfig) Window() time.Duration {
	if c.WindowMinutes <= 0 {
		return time.Minute
	}
	return time.Duration(c.WindowMinutes) * time.Minute
}
