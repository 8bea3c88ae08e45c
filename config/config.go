package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

// EnviornmentVariable is the immutable configuration object constructed once
// at process start and passed by reference into the services that need it.
type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// JWT Configuration
	JWT_SECRET         string
	JWT_ISSUER         string
	JWT_EXPIRE_MINUTES int
	// CORS Configuration
	ALLOWED_ORIGINS string
	// Rate limiter: requests per minute per IP, 0 disables
	RATE_LIMIT_MAX int
	// Redis Configuration
	REDIS_URL string
	// AI Provider Configuration
	AI_API_KEY  string
	AI_BASE_URL string
	AI_MODEL    string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Token TTL defaults to 1440 minutes (24 hours)
	expireMinutes, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_MINUTES"))
	if err != nil || expireMinutes <= 0 {
		expireMinutes = 1440
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	rateLimitMax := 100
	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			rateLimitMax = parsed
		}
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// JWT
		JWT_SECRET:         os.Getenv("JWT_SECRET"),
		JWT_ISSUER:         os.Getenv("JWT_ISSUER"),
		JWT_EXPIRE_MINUTES: expireMinutes,
		// CORS
		ALLOWED_ORIGINS: allowedOrigins,
		RATE_LIMIT_MAX:  rateLimitMax,
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// AI Provider
		AI_API_KEY:  os.Getenv("AI_API_KEY"),
		AI_BASE_URL: os.Getenv("AI_BASE_URL"),
		AI_MODEL:    os.Getenv("AI_MODEL"),
	}

	return envVariables, nil
}
