package config

import "os"

type Config struct {
	AppEnv   string
	LogLevel string

	// Paths of the two persisted JSON collections.
	OrderLogPath string
	ProfilePath  string
}

func Load() Config {
	return Config{
		AppEnv:       getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OrderLogPath: getEnv("ORDER_LOG_PATH", "pizza_orders.json"),
		ProfilePath:  getEnv("PROFILE_PATH", "user_info.json"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
