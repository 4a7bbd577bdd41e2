package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration. It is built once in main and
// passed into components; nothing reads the environment after startup.
type Config struct {
	Port        string
	DatabaseURL string

	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatGPTModel  string
	MaxTokens     int
	Temperature   float64
	OpenAITimeout time.Duration

	KafkaBrokers []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment, applying defaults that
// match the documented .env surface.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		Algorithm:      getEnv("ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		ChatGPTModel:   getEnv("CHATGPT_MODEL", "gpt-3.5-turbo"),
		MaxTokens:      getEnvInt("CHATGPT_MAX_TOKENS", 200),
		Temperature:    getEnvFloat("CHATGPT_TEMPERATURE", 0.5),
		OpenAITimeout:  time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
