package config

import (
	"fmt"
	"os"
	"strconv"
)

// SecretKeySize is the AES-256 key length SECRET_KEY must have.
const SecretKeySize = 32

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	Port                  string
	GoogleClientID        string
	GoogleClientSecret    string
	GoogleRedirectURI     string
	LinkedInClientID      string
	LinkedInClientSecret  string
	LinkedInRedirectURI   string
	LinkedInAPIURL        string
	GeminiAPIKey          string
	GeminiModel           string
	PostgresURI           string
	RedisURI              string
	FrontendURL           string
	R2                    R2
	SecretKey             string
	CookieName            string
	LogLevel              string
	WorkerConcurrency     int
	MaxUploadSizeMB       int
	GenerationTimeoutSecs int
}

func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("PORT", "3000"),
		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:    getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		LinkedInClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
		LinkedInClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
		LinkedInRedirectURI:  getEnv("LINKEDIN_REDIRECT_URI", "http://localhost:3000/auth/linkedin/callback"),
		LinkedInAPIURL:       getEnv("LINKEDIN_API_URL", "https://api.linkedin.com"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		PostgresURI:          getEnv("POSTGRES_URI", ""),
		RedisURI:             getEnv("REDIS_URI", "localhost:6379"),
		FrontendURL:          getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:             getEnv("SECRET_KEY", ""),
		CookieName:            getEnv("COOKIE_NAME", "studio_session"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		WorkerConcurrency:     getEnvAsInt("WORKER_CONCURRENCY", 10),
		MaxUploadSizeMB:       getEnvAsInt("MAX_UPLOAD_SIZE_MB", 100),
		GenerationTimeoutSecs: getEnvAsInt("GENERATION_TIMEOUT_SECS", 60),
	}
}

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if len(c.SecretKey) != SecretKeySize {
		return fmt.Errorf("SECRET_KEY must be exactly %d bytes, got %d", SecretKeySize, len(c.SecretKey))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
