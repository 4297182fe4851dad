package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port          string
	AllowedOrigin string

	GeminiAPIKey            string
	GeminiModel             string
	GeminiRequestsPerMinute int
	OpenAIAPIKey            string
	OpenAIModel             string

	ScraperHeadlessFallback bool
	ChromeDriverPath        string

	MongoURI      string
	MongoDatabase string

	AWSRegion     string
	AWSBucketName string

	JWTSecret         string
	SendGridAPIKey    string
	SendGridFromEmail string

	BasicAnalysisDelay time.Duration
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = getEnv("PORT", "8080")
	AllowedOrigin = getEnv("ALLOWED_ORIGIN", "*")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.5-flash")
	GeminiRequestsPerMinute = getEnvInt("GEMINI_REQUESTS_PER_MINUTE", 60)
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	ScraperHeadlessFallback = getEnvBool("SCRAPER_HEADLESS_FALLBACK", false)
	ChromeDriverPath = getEnv("CHROMEDRIVER_PATH", "/usr/local/bin/chromedriver")

	// Empty MONGO_URI keeps every store in memory.
	MongoURI = os.Getenv("MONGO_URI")
	MongoDatabase = getEnv("MONGO_DATABASE", "socialboost")

	AWSRegion = getEnv("AWS_REGION", "us-east-1")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	JWTSecret = os.Getenv("JWT_SECRET")
	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	SendGridFromEmail = getEnv("SENDGRID_FROM_EMAIL", "no-reply@socialboost.com")

	BasicAnalysisDelay = getEnvDuration("BASIC_ANALYSIS_DELAY", 3500*time.Millisecond)
}

// ErrMissingJWTSecret is returned by Validate when tokens cannot be signed
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Validate checks the settings the server cannot start without
func Validate() error {
	if JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
