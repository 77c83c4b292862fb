package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type AppConfig struct {
	Port     string
	LogLevel string

	JWTSecret    string
	AuthRequired bool

	ProductServiceURL  string
	CustomerServiceURL string
	UpstreamTimeout    time.Duration

	CacheBackend string
	RedisAddr    string
	CacheTTL     time.Duration

	// Empty keeps the calculation history in memory.
	DatabasePath string

	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		AuthRequired: getEnvAsBool("AUTH_REQUIRED", false),

		ProductServiceURL:  strings.TrimRight(getEnv("PRODUCT_SERVICE_URL", "http://localhost:8084/api/products"), "/"),
		CustomerServiceURL: strings.TrimRight(getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8083/api/customers"), "/"),
		UpstreamTimeout:    getEnvAsDuration("UPSTREAM_TIMEOUT", 5*time.Second),

		CacheBackend: strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:     getEnvAsDuration("CACHE_TTL", 10*time.Minute),

		DatabasePath: getEnv("DATABASE_PATH", ""),

		RateLimitCapacity: getEnvAsInt("RATE_LIMIT_CAPACITY", 10),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if Cfg.CacheBackend != CacheBackendMemory && Cfg.CacheBackend != CacheBackendRedis {
		log.Printf("WARNING: Unknown CACHE_BACKEND '%s', using %s.", Cfg.CacheBackend, CacheBackendMemory)
		Cfg.CacheBackend = CacheBackendMemory
	}
	if Cfg.AuthRequired && Cfg.JWTSecret == "" {
		log.Fatalf("FATAL: JWT_SECRET is required when AUTH_REQUIRED is true.")
	}
	if Cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET not set, request authentication is disabled.")
	}
	if Cfg.RateLimitCapacity <= 0 {
		log.Printf("WARNING: RATE_LIMIT_CAPACITY must be positive, got %d. Using default 10.", Cfg.RateLimitCapacity)
		Cfg.RateLimitCapacity = 10
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, Cache=%s, DBPath=%q, ProductService=%s, CustomerService=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.CacheBackend, Cfg.DatabasePath, Cfg.ProductServiceURL, Cfg.CustomerServiceURL)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid boolean value for %s ('%s'), using default: %t", key, valueStr, fallback)
	return fallback
}
