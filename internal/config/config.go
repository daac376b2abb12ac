// Package config loads assistant configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Provider identifies a hosted model backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// Config holds all configuration values.
type Config struct {
	// Chat model
	LLMProvider Provider
	LLMModel    string

	// Embeddings
	EmbedProvider  Provider
	EmbedModel     string
	EmbedDimension int

	// Credentials / hosts
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaHost      string

	// Stores
	SQLitePath string
	VectorDir  string
	FAQPath    string

	// Retrieval
	FAQTopK int

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// Defaults match the hosted setup the assistant ships with.
func Load() Config {
	return Config{
		LLMProvider: Provider(getEnv("SHOPASSIST_LLM_PROVIDER", "openai")),
		LLMModel:    getEnv("SHOPASSIST_LLM_MODEL", "gpt-5-mini"),

		EmbedProvider:  Provider(getEnv("SHOPASSIST_EMBED_PROVIDER", "openai")),
		EmbedModel:     getEnv("SHOPASSIST_EMBED_MODEL", "text-embedding-3-small"),
		EmbedDimension: getEnvInt("SHOPASSIST_EMBED_DIMENSION", 0),

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),

		SQLitePath: getEnv("SHOPASSIST_DB_PATH", "db.sqlite"),
		VectorDir:  getEnv("SHOPASSIST_VECTOR_DIR", "./chroma_db"),
		FAQPath:    getEnv("SHOPASSIST_FAQ_PATH", "resources/faq_data.csv"),

		FAQTopK: getEnvInt("SHOPASSIST_FAQ_TOP_K", 3),

		LogFile:  getEnv("SHOPASSIST_LOG_FILE", "/tmp/shopassist.log"),
		LogLevel: parseLogLevel(getEnv("SHOPASSIST_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
