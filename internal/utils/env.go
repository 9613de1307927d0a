package utils

import (
	"os"
	"strconv"

	"github.com/wellforge/masterclass-backend/internal/logger"
)

func GetEnv(key, fallback string, log *logger.Logger) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	log.Debug("Env var not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

func GetEnvAsInt(key string, fallback int, log *logger.Logger) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		log.Debug("Env var not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("Env var is not an int, using fallback", "key", key, "value", raw)
		return fallback
	}
	return parsed
}
