package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string // HTTP listen port
	DBUser     string // MongoDB user
	DBPassword string // MongoDB password
	DBHost     string // MongoDB cluster host
	DBName     string // Database name
	JWTSecret  string // JWT signing secret
	RedisAddr  string // Redis server address
	RedisPass  string // Redis password
	RedisDB    int    // Redis database number
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000" // Default port when the host assigns none
	}
	return &Config{
		AppPort:    port,                           // HTTP listen port
		DBUser:     os.Getenv("DB_USER"),           // MongoDB user
		DBPassword: os.Getenv("DB_PASSWORD"),       // MongoDB password
		DBHost:     os.Getenv("DB_HOST"),           // MongoDB cluster host
		DBName:     os.Getenv("DB_NAME"),           // Database name
		JWTSecret:  os.Getenv("JWT_SECRET"),        // JWT signing secret
		RedisAddr:  os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:    redisDB,                        // Redis database number
		IsProd:     os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
