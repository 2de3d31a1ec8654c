// Package config reads runtime settings from the environment, loading .env first when present.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	MongoURI       string
	MongoDB        string
	RedisURL       string
	RedisPassword  string
	NewsAPIKey     string
	NewsAPIURL     string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load returns the config and whether a .env file was read.
func Load() (Config, bool) {
	dotenv := godotenv.Load() == nil

	port := getenv("PORT", "8080")
	if port[0] != ':' {
		port = ":" + port
	}

	return Config{
		Env:            getenv("APP_ENV", "production"),
		Port:           port,
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "gourmet"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIURL:     getenv("NEWS_API_URL", "https://newsapi.org/v2/everything"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "*")),
		RateLimitRPS:   getfloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getint("RATE_LIMIT_BURST", 10),
	}, dotenv
}

func (c Config) Development() bool { return c.Env == "development" }

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func getfloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
