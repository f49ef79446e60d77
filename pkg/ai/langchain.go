package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/pkg/config"
)

// LangChainClient completes chat prompts through any OpenAI-compatible endpoint via langchaingo
type LangChainClient struct {
	model llms.Model
}

// NewLangChainClient creates a chat client from the OpenAI section of the config
func NewLangChainClient(cfg *config.OpenAIConfig) (*LangChainClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key not configured: %w", entities.ErrSummarizerUnavailable)
	}
	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.ChatModel),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}
	model, err := lcopenai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &LangChainClient{model: model}, nil
}

// Name identifies the provider in logs
func (c *LangChainClient) Name() string { return "openai" }

// Complete sends one system+human exchange and returns the first choice
func (c *LangChainClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userText)},
		},
	}

	response, err := c.model.GenerateContent(ctx, content,
		llms.WithTemperature(SummaryTemperature),
		llms.WithMaxTokens(SummaryMaxTokens),
	)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}
