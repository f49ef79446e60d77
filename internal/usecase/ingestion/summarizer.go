package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

const (
	// SummaryInputLimit caps the characters of transcript text sent to the model
	SummaryInputLimit = 4000

	// FallbackSummary replaces the summary whenever the model call fails
	FallbackSummary = "Summary currently unavailable due to API limits."

	// DefaultSummaryTimeout bounds one completion request
	DefaultSummaryTimeout = 30 * time.Second
)

// SummarySystemPrompt constrains the model to a single call-log sentence
const SummarySystemPrompt = "You are a professional call logger. Summarize the conversation in EXACTLY one sentence " +
	"using this format: [Name] called to [Action] from [Business], resulting in [Outcome].\n" +
	"Example: Brando Thomas called to order a dozen long-stem red roses from Martha's Flores, " +
	"resulting in a successful transaction and shipment confirmation within 24 hours."

// Summarizer is a chat-completion collaborator
type Summarizer interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// SummarizationError reports why the fallback summary was used
type SummarizationError struct {
	Provider string
	Err      error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSummarizationFailed, e.Provider, e.Err)
}

func (e *SummarizationError) Unwrap() []error {
	return []error{ErrSummarizationFailed, e.Err}
}

// SummaryRequester sends transcript text to a Summarizer with a bounded wait
type SummaryRequester struct {
	summarizer Summarizer
	timeout    time.Duration
	logger     *zap.Logger
}

// NewSummaryRequester creates a requester; a non-positive timeout uses DefaultSummaryTimeout
func NewSummaryRequester(summarizer Summarizer, timeout time.Duration, logger *zap.Logger) (*SummaryRequester, error) {
	if summarizer == nil {
		return nil, ErrSummarizerRequired
	}
	if timeout <= 0 {
		timeout = DefaultSummaryTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryRequester{summarizer: summarizer, timeout: timeout, logger: logger}, nil
}

// Request asks the model for a summary of text, truncated to SummaryInputLimit characters
func (r *SummaryRequester) Request(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	userText := "Transcript: " + entities.TruncateRunes(text, SummaryInputLimit)

	r.logger.Info("🤖 Requesting summary", zap.String("provider", r.summarizer.Name()))
	summary, err := r.summarizer.Complete(ctx, SummarySystemPrompt, userText)
	if err == nil && summary == "" {
		err = entities.ErrEmptySummary
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", r.timeout, err)
		}
		return "", &SummarizationError{Provider: r.summarizer.Name(), Err: err}
	}
	return summary, nil
}

// Summarize never fails: any error yields FallbackSummary
func (r *SummaryRequester) Summarize(ctx context.Context, text string) string {
	summary, err := r.Request(ctx, text)
	if err != nil {
		r.logger.Warn("❌ Summary unavailable, using fallback", zap.Error(err))
		return FallbackSummary
	}
	return summary
}
