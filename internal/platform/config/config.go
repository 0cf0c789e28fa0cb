// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the API server and the worker.
type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDatabase string
	FolderPath    string
}

// Load は環境変数から設定を読み込みます。.envファイルがあれば先に
// 取り込みますが、無くてもエラーにはしません（本番は実環境変数のみ）。
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Config{
		Port:          getenv("PORT", "8080"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DATABASE", "files_manager"),
		FolderPath:    getenv("FOLDER_PATH", "/tmp/files_manager"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
