// ABOUTME: Centralized configuration for the murmur engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the check-in engine
type Config struct {
	// Storage settings
	DataDir string

	// OpenAI settings
	OpenAIKey          string
	ChatModel          string
	TranscriptionModel string
	Timeout            time.Duration
	MaxRetries         int
	RetryDelay         time.Duration

	// Check-in settings
	DefaultSetName string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DataDir:            os.Getenv("MURMUR_DATA_DIR"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		ChatModel:          getEnv("MURMUR_OPENAI_MODEL", "gpt-4o-mini"),
		TranscriptionModel: getEnv("MURMUR_TRANSCRIPTION_MODEL", "whisper-1"),
		Timeout:            getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:         getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:         getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DefaultSetName:     getEnv("MURMUR_DEFAULT_SET", "daily"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
