package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
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

// EngineConfig carries the env-level defaults for the recommendation engine.
// A recommendation_config DB row, when present, overrides these per request.
type EngineConfig struct {
	WCollaborative       float64
	WContent             float64
	WPopularity          float64
	DistanceWeight       float64
	DistanceCap          float64
	RecencyWindowSeconds int
	ExcludeSeen          bool
	DefaultTopN          int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "EventRadar API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PGHOST", "localhost"),
			Port:     getEnv("PGPORT", "5432"),
			User:     getEnv("PGUSER", "postgres"),
			Password: getEnv("PGPASSWORD", ""),
			Name:     getEnv("PGDATABASE", "event_radar"),
			SSLMode:  getEnv("PGSSLMODE", "require"),
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
		Engine: EngineConfig{
			WCollaborative:       getEnvFloat("ENGINE_W_COLLABORATIVE", 0.4),
			WContent:             getEnvFloat("ENGINE_W_CONTENT", 0.5),
			WPopularity:          getEnvFloat("ENGINE_W_POPULARITY", 0.1),
			DistanceWeight:       getEnvFloat("ENGINE_DISTANCE_WEIGHT", 0.3),
			DistanceCap:          getEnvFloat("ENGINE_DISTANCE_CAP", 2.0),
			RecencyWindowSeconds: getEnvInt("ENGINE_RECENCY_WINDOW_SECONDS", 120),
			ExcludeSeen:          getEnvBool("ENGINE_EXCLUDE_SEEN", true),
			DefaultTopN:          getEnvInt("ENGINE_DEFAULT_TOP_N", 10),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}

	return defaultVal
}
