package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Recommender RecommenderConfig
	ShareLink   ShareLinkConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	// BaseURL is the public address links are minted against,
	// e.g. https://shop.example.com
	BaseURL string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// RecommenderConfig carries the similarity weights and the result
// cache policy. The weights are a tuning surface, not domain truth;
// defaults here match recommender.DefaultConfig.
type RecommenderConfig struct {
	CollectionWeight float64
	AttributeWeight  float64
	PriceWeight      float64

	// CacheDriver selects the result cache backend: "redis",
	// "memory" or "none".
	CacheDriver string
	CacheTTL    time.Duration
	CacheSize   int
}

type ShareLinkConfig struct {
	// Key encrypts share tokens; must be 16, 24 or 32 bytes (AES).
	Key string
	TTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	collectionWeight, err := getEnvFloat("RECO_COLLECTION_WEIGHT", 3.0)
	if err != nil {
		return nil, err
	}
	attributeWeight, err := getEnvFloat("RECO_ATTRIBUTE_WEIGHT", 1.0)
	if err != nil {
		return nil, err
	}
	priceWeight, err := getEnvFloat("RECO_PRICE_WEIGHT", 0.5)
	if err != nil {
		return nil, err
	}

	cacheTTLSeconds, err := getEnvInt("RECO_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cacheSize, err := getEnvInt("RECO_CACHE_SIZE", 1024)
	if err != nil {
		return nil, err
	}

	shareLinkTTLMinutes, err := getEnvInt("SHARE_LINK_TTL_MINUTES", 7*24*60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "myStyleShop API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "mystyleshop"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Recommender: RecommenderConfig{
			CollectionWeight: collectionWeight,
			AttributeWeight:  attributeWeight,
			PriceWeight:      priceWeight,
			CacheDriver:      getEnv("RECO_CACHE_DRIVER", "none"),
			CacheTTL:         time.Duration(cacheTTLSeconds) * time.Second,
			CacheSize:        cacheSize,
		},
		ShareLink: ShareLinkConfig{
			Key: getEnv("SHARE_LINK_KEY", ""),
			TTL: time.Duration(shareLinkTTLMinutes) * time.Minute,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	switch len(cfg.ShareLink.Key) {
	case 16, 24, 32:
	default:
		return nil, errors.New("SHARE_LINK_KEY must be 16, 24 or 32 bytes")
	}

	switch cfg.Recommender.CacheDriver {
	case "redis", "memory", "none":
	default:
		return nil, fmt.Errorf("invalid RECO_CACHE_DRIVER %q", cfg.Recommender.CacheDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return f, nil
}
