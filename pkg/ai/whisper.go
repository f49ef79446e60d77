package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/pkg/config"
	"github.com/johnquangdev/call-summarizer/pkg/jobcontext"
)

const defaultWhisperModel = "whisper-1"

// WhisperClient transcribes audio with the OpenAI audio transcription API.
// Whisper returns timed segments but no speakers, so its output is never diarized.
type WhisperClient struct {
	api   openai.Client
	model string
	ready bool
}

// NewWhisperClient creates a transcription client for OpenAI or a compatible endpoint
func NewWhisperClient(cfg *config.OpenAIConfig) *WhisperClient {
	requestOpts := make([]option.RequestOption, 0, 2)
	model := defaultWhisperModel
	ready := false
	if cfg != nil {
		if cfg.BaseURL != "" {
			requestOpts = append(requestOpts, option.WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			requestOpts = append(requestOpts, option.WithAPIKey(cfg.APIKey))
			ready = true
		}
		if m := strings.TrimSpace(cfg.TranscriptionModel); m != "" {
			model = m
		}
	}
	return &WhisperClient{
		api:   openai.NewClient(requestOpts...),
		model: model,
		ready: ready,
	}
}

// Name identifies the provider in logs
func (w *WhisperClient) Name() string { return "openai" }

// Transcribe sends the audio and converts verbose_json segments.
// Pass an *os.File (or another reader exposing Name) so the upload keeps its extension.
func (w *WhisperClient) Transcribe(ctx context.Context, audio io.Reader) (*entities.AudioTranscript, error) {
	if !w.ready {
		return nil, entities.ErrTranscriberUnavailable
	}

	params := openai.AudioTranscriptionNewParams{
		File:           audio,
		Model:          openai.AudioModel(w.model),
		ResponseFormat: openai.AudioResponseFormatVerboseJSON,
	}

	response, err := w.api.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		name, _ := jobcontext.GetFileName(ctx)
		return nil, fmt.Errorf("openai transcription of %q failed: %w", name, err)
	}
	if response == nil {
		return nil, errors.New("audio transcriptions API returned nil response")
	}

	result := &entities.AudioTranscript{
		Language: response.Language,
		Provider: w.Name(),
	}
	for _, s := range response.Segments {
		text, start, end := s.Text, s.Start, s.End
		result.Segments = append(result.Segments, entities.Segment{
			Text:  &text,
			Start: &start,
			End:   &end,
		})
	}
	if len(result.Segments) == 0 && strings.TrimSpace(response.Text) != "" {
		text := response.Text
		result.Segments = []entities.Segment{{Text: &text}}
	}
	return result, nil
}
