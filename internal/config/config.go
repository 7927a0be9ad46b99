package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBPath        string
	BaseURL       string
	SecureCookies bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "37371"),
		DBPath:        getEnv("DB_PATH", "lumetric.db"),
		BaseURL:       strings.TrimRight(getEnv("BASE_URL", "http://localhost:37371"), "/"),
		SecureCookies: getEnv("INSECURE_COOKIES", "") == "",
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
