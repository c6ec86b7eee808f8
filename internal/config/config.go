package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - estructura de configuración del servicio
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Proveedor de IA (API compatible con OpenAI)
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAITimeout      time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`
	TranscriptionModel string        `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`
	ExtractionModel    string        `env:"EXTRACTION_MODEL" envDefault:"gpt-4-turbo-preview"`
	EmbeddingModel     string        `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	CompletionModel    string        `env:"COMPLETION_MODEL" envDefault:"gpt-4-turbo-preview"`
	EmbeddingDimension int           `env:"EMBEDDING_DIMENSION" envDefault:"1536"`

	// Motor de consultas RAG
	RAGTopK           int     `env:"RAG_TOP_K" envDefault:"5"`
	RAGMatchThreshold float64 `env:"RAG_MATCH_THRESHOLD" envDefault:"0.7"`

	// WhatsApp (Graph API de Meta)
	WhatsAppAccessToken   string `env:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppVerifyToken   string `env:"WHATSAPP_VERIFY_TOKEN"`
	WhatsAppPhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	GraphAPIBaseURL       string `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com/v18.0"`

	// Distribución de alertas
	AlertConcurrency int           `env:"ALERT_CONCURRENCY" envDefault:"4"`
	AlertTimeout     time.Duration `env:"ALERT_TIMEOUT" envDefault:"10s"`

	// Claves de API para autenticación del panel
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig carga la configuración desde variables de entorno y el archivo .env
func LoadConfig() (*Config, error) {
	// Carga de variables desde .env (si existe)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error cargando el archivo .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAITimeout:         getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
		TranscriptionModel:    getEnv("TRANSCRIPTION_MODEL", "whisper-1"),
		ExtractionModel:       getEnv("EXTRACTION_MODEL", "gpt-4-turbo-preview"),
		EmbeddingModel:        getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		CompletionModel:       getEnv("COMPLETION_MODEL", "gpt-4-turbo-preview"),
		EmbeddingDimension:    getEnvAsInt("EMBEDDING_DIMENSION", 1536),
		RAGTopK:               getEnvAsInt("RAG_TOP_K", 5),
		RAGMatchThreshold:     getEnvAsFloat("RAG_MATCH_THRESHOLD", 0.7),
		WhatsAppAccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppVerifyToken:   os.Getenv("WHATSAPP_VERIFY_TOKEN"),
		WhatsAppPhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		GraphAPIBaseURL:       getEnv("GRAPH_API_BASE_URL", "https://graph.facebook.com/v18.0"),
		AlertConcurrency:      getEnvAsInt("ALERT_CONCURRENCY", 4),
		AlertTimeout:          getEnvAsDuration("ALERT_TIMEOUT", 10*time.Second),
	}

	// Carga de claves de API
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv devuelve el valor de la variable de entorno o el valor por defecto
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt devuelve el valor de la variable de entorno como int o el valor por defecto
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat devuelve el valor de la variable de entorno como float64 o el valor por defecto
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration devuelve el valor de la variable de entorno como time.Duration o el valor por defecto
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
