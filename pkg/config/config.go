package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	GoogleProject   string
	CredentialsJSON string
	CredentialsFile string
	JWTSecret       string
	JWTExpiry       int64
	StripeSecretKey string
	RedisAddr       string
	RedisPass       string
	RedisDB         int
	CategoryTTL     int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		GoogleProject:   getEnv("GOOGLE_PROJECT_ID", ""),
		CredentialsJSON: getEnv("FIRESTORE_CREDENTIALS_JSON", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:       getEnvAsInt64("JWT_EXPIRY", 60*60), // 1 hour
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASS", ""),
		RedisDB:         int(getEnvAsInt64("REDIS_DB", 0)),
		CategoryTTL:     getEnvAsInt64("CATEGORY_CACHE_TTL", 10*60),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
