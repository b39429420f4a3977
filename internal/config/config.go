package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is the convenience default used when OPENAI_API_KEY is
// not set. It is expected to fail on the first completion call if left as is.
const PlaceholderAPIKey = "your-api-key-here"

type Config struct {
	OpenAIKey   string
	OpenAIModel string
	DatabaseURL string
	RedisURL    string
	MetricsPort string
	SnapshotDir string
	HTTPTimeout time.Duration
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		OpenAIKey:   getEnv("OPENAI_API_KEY", PlaceholderAPIKey),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		SnapshotDir: getEnv("SNAPSHOT_DIR", "."),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT", 20)) * time.Second,
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
