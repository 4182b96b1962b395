package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Rakuten   RakutenConfig
	Cache     CacheConfig
	Diagnosis DiagnosisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RakutenConfig holds Rakuten Ichiba API configuration
type RakutenConfig struct {
	AppID    string   `mapstructure:"app_id"`
	BaseURL  string   `mapstructure:"base_url"`
	Keywords []string `mapstructure:"keywords"`
	MinPrice int      `mapstructure:"min_price"`
	MaxPrice int      `mapstructure:"max_price"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // "memory" or "file"
	Dir  string        `mapstructure:"dir"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// DiagnosisConfig holds diagnosis engine configuration
type DiagnosisConfig struct {
	TopN     int `mapstructure:"top_n"`
	MaxScore int `mapstructure:"max_score"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/proteinnavi/")

	v.SetEnvPrefix("PROTEINNAVI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Rakuten defaults. The app ID has no usable default but needs a key
	// entry so the env var is picked up during Unmarshal.
	v.SetDefault("rakuten.app_id", "")
	v.SetDefault("rakuten.base_url", "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601")
	v.SetDefault("rakuten.keywords", []string{"ザバス", "ビーレジェンド", "マイプロテイン"})
	v.SetDefault("rakuten.min_price", 1000)
	v.SetDefault("rakuten.max_price", 20000)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.dir", "cache")
	v.SetDefault("cache.ttl", "168h") // 1 week

	// Diagnosis defaults
	v.SetDefault("diagnosis.top_n", 3)
	v.SetDefault("diagnosis.max_score", 125)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Rakuten.AppID == "" {
		return fmt.Errorf("Rakuten application ID is required (set PROTEINNAVI_RAKUTEN_APP_ID)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "file" {
		return fmt.Errorf("cache type must be 'memory' or 'file', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "file" && config.Cache.Dir == "" {
		return fmt.Errorf("cache dir is required when cache type is 'file'")
	}

	if config.Diagnosis.TopN < 0 {
		return fmt.Errorf("diagnosis top_n must not be negative, got: %d", config.Diagnosis.TopN)
	}

	return nil
}
