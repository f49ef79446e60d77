// Package app wires configuration into the ingestion stack shared by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/call-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/call-summarizer/internal/infrastructure/storage"
	"github.com/johnquangdev/call-summarizer/internal/usecase/history"
	"github.com/johnquangdev/call-summarizer/internal/usecase/ingestion"
	pkgai "github.com/johnquangdev/call-summarizer/pkg/ai"
	"github.com/johnquangdev/call-summarizer/pkg/config"
)

// App holds the constructed components
type App struct {
	Config      *config.Config
	Pipeline    *ingestion.Pipeline
	Transcripts *repository.TranscriptRepository
	Summaries   *repository.SummaryRepository
	History     *history.UploadHistory
	Archive     *storage.MinIOClient

	TranscriberName string
	SummarizerName  string

	redis *redis.Client
}

// New builds every component from cfg.
// Object storage and Redis are only contacted when enabled.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		Config:      cfg,
		Transcripts: repository.NewTranscriptRepository(cfg.Store.TranscriptFile),
		Summaries:   repository.NewSummaryRepository(cfg.Store.SummaryFile),
		History:     history.NewUploadHistory(nil),
	}

	summarizer, err := NewSummarizer(cfg)
	if err != nil {
		return nil, err
	}
	a.SummarizerName = summarizer.Name()

	requester, err := ingestion.NewSummaryRequester(summarizer, cfg.Summary.Timeout, logger)
	if err != nil {
		return nil, err
	}

	opts := []ingestion.Option{
		ingestion.WithStagingDir(cfg.Store.StagingDir),
		ingestion.WithTimeout(cfg.Ingest.Timeout),
		ingestion.WithLogger(logger),
	}

	a.TranscriberName = config.ProviderNone
	if transcriber := NewTranscriber(cfg, logger); transcriber != nil {
		a.TranscriberName = transcriber.Name()
		opts = append(opts, ingestion.WithTranscriber(transcriber))
	}

	if cfg.Storage.Enabled {
		archive, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			return nil, err
		}
		a.Archive = archive
		opts = append(opts, ingestion.WithArchiver(archive))
	}

	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.redis = client
		opts = append(opts, ingestion.WithLocker(cache.NewRedisLocker(client, cfg.Redis.LockTTL, logger)))
	}

	pipeline, err := ingestion.NewPipeline(a.Transcripts, a.Summaries, requester, a.History, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Pipeline = pipeline

	return a, nil
}

// Close releases network clients
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

// NewTranscriber returns the configured speech-to-text provider, or nil for "none"
func NewTranscriber(cfg *config.Config, logger *zap.Logger) ingestion.Transcriber {
	switch strings.ToLower(cfg.Transcriber.Provider) {
	case config.ProviderAssemblyAI:
		return pkgai.NewAssemblyAIClient(&cfg.Assembly, cfg.Transcriber.DiarizationEnabled, logger)
	case config.ProviderOpenAI:
		return pkgai.NewWhisperClient(&cfg.OpenAI)
	default:
		return nil
	}
}

// NewSummarizer returns the configured chat-completion provider
func NewSummarizer(cfg *config.Config) (ingestion.Summarizer, error) {
	switch strings.ToLower(cfg.Summary.Provider) {
	case config.ProviderGroq:
		return pkgai.NewGroqClient(&cfg.Groq), nil
	case config.ProviderOpenAI:
		client, err := pkgai.NewLangChainClient(&cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("openai summarizer: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}
