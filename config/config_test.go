package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PROTEINNAVI_SERVER_PORT")
		os.Unsetenv("PROTEINNAVI_SERVER_ENVIRONMENT")
		os.Unsetenv("PROTEINNAVI_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PROTEINNAVI_RAKUTEN_APP_ID")
		os.Unsetenv("PROTEINNAVI_RAKUTEN_BASE_URL")
		os.Unsetenv("PROTEINNAVI_RAKUTEN_MIN_PRICE")
		os.Unsetenv("PROTEINNAVI_RAKUTEN_MAX_PRICE")
		os.Unsetenv("PROTEINNAVI_CACHE_TYPE")
		os.Unsetenv("PROTEINNAVI_CACHE_DIR")
		os.Unsetenv("PROTEINNAVI_CACHE_TTL")
		os.Unsetenv("PROTEINNAVI_DIAGNOSIS_TOP_N")
		os.Unsetenv("PROTEINNAVI_DIAGNOSIS_MAX_SCORE")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required app ID
		os.Setenv("PROTEINNAVI_RAKUTEN_APP_ID", "test-app-id")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Rakuten.BaseURL != "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601" {
			t.Errorf("Rakuten.BaseURL = %s", cfg.Rakuten.BaseURL)
		}
		if len(cfg.Rakuten.Keywords) != 3 {
			t.Errorf("len(Rakuten.Keywords) = %d, want 3", len(cfg.Rakuten.Keywords))
		}
		if cfg.Rakuten.MinPrice != 1000 || cfg.Rakuten.MaxPrice != 20000 {
			t.Errorf("price band = %d-%d, want 1000-20000", cfg.Rakuten.MinPrice, cfg.Rakuten.MaxPrice)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 168*time.Hour {
			t.Errorf("Cache.TTL = %v, want 168h", cfg.Cache.TTL)
		}
		if cfg.Diagnosis.TopN != 3 {
			t.Errorf("Diagnosis.TopN = %d, want 3", cfg.Diagnosis.TopN)
		}
		if cfg.Diagnosis.MaxScore != 125 {
			t.Errorf("Diagnosis.MaxScore = %d, want 125", cfg.Diagnosis.MaxScore)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PROTEINNAVI_SERVER_PORT", "9090")
		os.Setenv("PROTEINNAVI_SERVER_ENVIRONMENT", "production")
		os.Setenv("PROTEINNAVI_RAKUTEN_APP_ID", "custom-app-id")
		os.Setenv("PROTEINNAVI_RAKUTEN_BASE_URL", "https://custom.api.com")
		os.Setenv("PROTEINNAVI_CACHE_TYPE", "file")
		os.Setenv("PROTEINNAVI_CACHE_DIR", "/tmp/proteinnavi-cache")
		os.Setenv("PROTEINNAVI_CACHE_TTL", "24h")
		os.Setenv("PROTEINNAVI_DIAGNOSIS_TOP_N", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Rakuten.AppID != "custom-app-id" {
			t.Errorf("Rakuten.AppID = %s, want custom-app-id", cfg.Rakuten.AppID)
		}
		if cfg.Rakuten.BaseURL != "https://custom.api.com" {
			t.Errorf("Rakuten.BaseURL = %s, want https://custom.api.com", cfg.Rakuten.BaseURL)
		}
		if cfg.Cache.Type != "file" {
			t.Errorf("Cache.Type = %s, want file", cfg.Cache.Type)
		}
		if cfg.Cache.Dir != "/tmp/proteinnavi-cache" {
			t.Errorf("Cache.Dir = %s, want /tmp/proteinnavi-cache", cfg.Cache.Dir)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Diagnosis.TopN != 5 {
			t.Errorf("Diagnosis.TopN = %d, want 5", cfg.Diagnosis.TopN)
		}
	})

	t.Run("fails validation when app ID is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing app ID")
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PROTEINNAVI_RAKUTEN_APP_ID", "test-app-id")
		os.Setenv("PROTEINNAVI_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})
}
