package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI           string
	MongoDBName        string
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	ClientOrigin       string
	RedisAddr          string
	RedisPassword      string
	ServerPort         string
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGO_DB_NAME", "foodApplication"),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:3001/google/callback"),
		ClientOrigin:       getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		ServerPort:         getEnv("PORT", "3001"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
