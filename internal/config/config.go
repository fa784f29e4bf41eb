package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port            string        `json:"port"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Кластеризация
	SimilarityThreshold int `json:"similarity_threshold"`
	MaxLengthGap        int `json:"max_length_gap"`

	// Нормализация: переопределение списка ОПФ-токенов (пустой список —
	// используется встроенный список по умолчанию)
	LegalFormTokens []string `json:"legal_form_tokens"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Ограничение частоты запросов
	RateLimitPerSec int `json:"rate_limit_per_sec"`
	RateLimitBurst  int `json:"rate_limit_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port:            getEnv("SERVER_PORT", "9999"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Кластеризация
		SimilarityThreshold: getEnvInt("SIMILARITY_THRESHOLD", 1),
		MaxLengthGap:        getEnvInt("MAX_LENGTH_GAP", 10),

		// Нормализация
		LegalFormTokens: getEnvList("LEGAL_FORM_TOKENS"),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Ограничение частоты запросов
		RateLimitPerSec: getEnvInt("RATE_LIMIT_PER_SEC", 50),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 100),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList получает переменную окружения как список значений через запятую
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}
