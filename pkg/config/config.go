package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Transcription providers
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderOpenAI     = "openai"
	ProviderNone       = "none"
	ProviderGroq       = "groq"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	Ingest      IngestConfig
	Transcriber TranscriberConfig
	Assembly    AssemblyAIConfig
	OpenAI      OpenAIConfig
	Summary     SummaryConfig
	Groq        GroqConfig
	Storage     StorageConfig
	Redis       RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000" validate:"required"`
	Host            string        `envconfig:"HOST" default:"127.0.0.1"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxUploadSize   string        `envconfig:"MAX_UPLOAD_SIZE" default:"100M"`
}

// StoreConfig holds the locations of the CSV files and the upload staging area
type StoreConfig struct {
	TranscriptFile string `envconfig:"TRANSCRIPT_FILE" default:"transcriptions_with_speakers.csv" validate:"required"`
	SummaryFile    string `envconfig:"SUMMARY_FILE" default:"final_summaries.csv" validate:"required"`
	StagingDir     string `envconfig:"STAGING_DIR"`
}

// IngestConfig bounds one upload from staging to history
type IngestConfig struct {
	Timeout time.Duration `envconfig:"INGEST_TIMEOUT" default:"15m" validate:"gte=0"`
}

// TranscriberConfig selects the speech-to-text backend
type TranscriberConfig struct {
	Provider           string `envconfig:"TRANSCRIBER_PROVIDER" default:"assemblyai" validate:"oneof=assemblyai openai none"`
	DiarizationEnabled bool   `envconfig:"DIARIZATION_ENABLED" default:"true"`
}

// AssemblyAIConfig holds AssemblyAI credentials
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode string `envconfig:"ASSEMBLYAI_LANGUAGE_CODE"`
}

// OpenAIConfig holds settings for OpenAI-compatible endpoints
type OpenAIConfig struct {
	APIKey             string `envconfig:"OPENAI_API_KEY"`
	BaseURL            string `envconfig:"OPENAI_BASE_URL"`
	TranscriptionModel string `envconfig:"OPENAI_TRANSCRIPTION_MODEL" default:"whisper-1"`
	ChatModel          string `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-4o-mini"`
}

// SummaryConfig selects the summarization backend
type SummaryConfig struct {
	Provider string        `envconfig:"SUMMARY_PROVIDER" default:"groq" validate:"oneof=groq openai"`
	Timeout  time.Duration `envconfig:"SUMMARY_TIMEOUT" default:"30s" validate:"gt=0"`
}

// GroqConfig holds Groq API settings
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
}

// StorageConfig holds object storage settings for archiving raw uploads
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000" validate:"required_if=Enabled true"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"call-uploads" validate:"required_if=Enabled true"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// RedisConfig holds Redis configuration for the shared ingestion lock
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"2m" validate:"gt=0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Store.StagingDir == "" {
		cfg.Store.StagingDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
