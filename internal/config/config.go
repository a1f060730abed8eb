package config

import (
	"os"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Server ServerConfig
	Web    WebConfig
	Client ClientConfig
}

// ServerConfig はAPIサーバーの設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// WebConfig はフロントエンドサーバーの設定
type WebConfig struct {
	Port string
}

// ClientConfig はAPIクライアントの設定
type ClientConfig struct {
	// BaseURL はAPIサーバーのベースURL
	// 未設定の場合はローカル開発用のアドレスにフォールバックする
	BaseURL string
	Timeout time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5001"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Web: WebConfig{
			Port: getEnv("WEB_PORT", "3000"),
		},
		Client: ClientConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5001"),
			Timeout: getDurationEnv("API_CLIENT_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
