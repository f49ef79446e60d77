package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "transcriptions_with_speakers.csv", cfg.Store.TranscriptFile)
	assert.Equal(t, "final_summaries.csv", cfg.Store.SummaryFile)
	assert.NotEmpty(t, cfg.Store.StagingDir)
	assert.Equal(t, 15*time.Minute, cfg.Ingest.Timeout)
	assert.Equal(t, ProviderAssemblyAI, cfg.Transcriber.Provider)
	assert.True(t, cfg.Transcriber.DiarizationEnabled)
	assert.Equal(t, ProviderGroq, cfg.Summary.Provider)
	assert.Equal(t, 30*time.Second, cfg.Summary.Timeout)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.False(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "127.0.0.1:8000", cfg.Address())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRANSCRIBER_PROVIDER", "openai")
	t.Setenv("SUMMARY_TIMEOUT", "5s")
	t.Setenv("INGEST_TIMEOUT", "0s")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("ALLOWED_ORIGINS", "http://a.local,http://b.local")
	t.Setenv("REDIS_HOST", "redis.local")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Transcriber.Provider)
	assert.Equal(t, 5*time.Second, cfg.Summary.Timeout)
	assert.Zero(t, cfg.Ingest.Timeout)
	assert.Equal(t, "gsk-test", cfg.Groq.APIKey)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "redis.local:6379", cfg.GetRedisAddr())
}

func TestFromEnvRejectsUnknownProvider(t *testing.T) {
	t.Setenv("SUMMARY_PROVIDER", "carrier-pigeon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRequiresBucketWhenStorageEnabled(t *testing.T) {
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("STORAGE_BUCKET", "")

	_, err := FromEnv()
	assert.Error(t, err)
}
