package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppTimezone       string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	DbMaxOpenConns    int
	DbConnMaxLifetime time.Duration
	TrustedProxies    []string
	JWTSecret         string
	JWTAudience       string
	JWTLeeway         time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	ProfileCacheTTL   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppTimezone:       getEnv("APP_TIMEZONE", "Asia/Tokyo"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "studyplanner"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "studyplanner"),
		DbName:            getEnv("MYSQL_DATABASE", "studyplanner"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbMaxOpenConns:    getEnvInt("MYSQL_MAX_OPEN_CONNS", 10),
		DbConnMaxLifetime: getEnvDuration("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		JWTSecret:         getEnv("AUTH_JWT_SECRET", ""),
		JWTAudience:       getEnv("AUTH_JWT_AUDIENCE", "authenticated"),
		JWTLeeway:         getEnvDuration("AUTH_JWT_LEEWAY", 30*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		ProfileCacheTTL:   getEnvDuration("PROFILE_CACHE_TTL", 5*time.Minute),
	}
}

// Location resolves AppTimezone, falling back to the process local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
