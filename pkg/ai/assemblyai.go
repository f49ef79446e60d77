package ai

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/pkg/config"
	"github.com/johnquangdev/call-summarizer/pkg/jobcontext"
	"github.com/johnquangdev/call-summarizer/pkg/speaker"
)

// AssemblyAIClient transcribes and diarizes audio with the AssemblyAI SDK
type AssemblyAIClient struct {
	sdk          *aai.Client
	apiKey       string
	languageCode string
	diarize      bool
	uploadRetry  time.Duration
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, diarize bool, logger *zap.Logger) *AssemblyAIClient {
	var apiKey, lang string
	if cfg != nil {
		apiKey, lang = cfg.APIKey, cfg.LanguageCode
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssemblyAIClient{
		sdk:          aai.NewClient(apiKey),
		apiKey:       apiKey,
		languageCode: lang,
		diarize:      diarize,
		uploadRetry:  30 * time.Second,
		logger:       logger,
	}
}

// Name identifies the provider in logs
func (c *AssemblyAIClient) Name() string { return "assemblyai" }

// Transcribe uploads audio, waits for the transcript and returns its speaker turns.
// When speaker labels are disabled or missing, sentence segments without speakers are returned.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (*entities.AudioTranscript, error) {
	if c.apiKey == "" {
		return nil, entities.ErrTranscriberUnavailable
	}
	log := c.logger.With(uploadFields(ctx)...)

	uploadURL, err := c.upload(ctx, audio)
	if err != nil {
		return nil, err
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(c.diarize),
	}
	if c.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.languageCode)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}

	log.Info("🎙️ Starting transcription", zap.Bool("speaker_labels", c.diarize))

	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return nil, fmt.Errorf("assemblyai transcription failed: %s", deref(transcript.Error))
	}

	result := &entities.AudioTranscript{
		Language: string(transcript.LanguageCode),
		Provider: c.Name(),
	}

	if c.diarize && len(transcript.Utterances) > 0 {
		result.Segments = utteranceSegments(transcript.Utterances)
		result.Diarized = true
		return result, nil
	}

	if c.diarize {
		log.Warn("⚠️ No speaker turns returned, falling back to undiarized sentences")
	}

	segments, err := c.sentenceSegments(ctx, deref(transcript.ID))
	if err != nil {
		log.Warn("⚠️ Could not fetch sentences, using full text as one segment", zap.Error(err))
		text := deref(transcript.Text)
		if text == "" {
			return result, nil
		}
		segments = []entities.Segment{{Text: &text}}
	}
	result.Segments = segments
	return result, nil
}

// upload pushes audio to AssemblyAI, retrying with exponential backoff when the reader can be rewound
func (c *AssemblyAIClient) upload(ctx context.Context, audio io.Reader) (string, error) {
	seeker, rewindable := audio.(io.Seeker)

	var uploadURL string
	attempt := 0
	uploadFn := func() error {
		if attempt > 0 {
			if !rewindable {
				return backoff.Permanent(fmt.Errorf("audio stream cannot be replayed"))
			}
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return backoff.Permanent(err)
			}
		}
		attempt++

		u, err := c.sdk.Upload(ctx, audio)
		if err != nil {
			c.logger.Warn("upload to AssemblyAI failed", zap.Int("attempt", attempt), zap.Error(err))
			if !jobcontext.IsRetryableError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		uploadURL = u
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = c.uploadRetry

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	c.logger.Info("✅ File uploaded to AssemblyAI", zap.Int("attempts", attempt))
	return uploadURL, nil
}

func (c *AssemblyAIClient) sentenceSegments(ctx context.Context, transcriptID string) ([]entities.Segment, error) {
	if transcriptID == "" {
		return nil, fmt.Errorf("transcript id missing")
	}
	resp, err := c.sdk.Transcripts.GetSentences(ctx, transcriptID)
	if err != nil {
		return nil, err
	}
	segments := make([]entities.Segment, 0, len(resp.Sentences))
	for _, s := range resp.Sentences {
		segments = append(segments, entities.Segment{
			Text:  s.Text,
			Start: millisToSeconds(s.Start),
			End:   millisToSeconds(s.End),
		})
	}
	return segments, nil
}

// utteranceSegments converts speaker turns, mapping AssemblyAI speaker letters to canonical labels
func utteranceSegments(utterances []aai.TranscriptUtterance) []entities.Segment {
	labeler := speaker.NewLabeler()
	segments := make([]entities.Segment, 0, len(utterances))
	for _, u := range utterances {
		seg := entities.Segment{
			Text:  u.Text,
			Start: millisToSeconds(u.Start),
			End:   millisToSeconds(u.End),
		}
		if raw := strings.TrimSpace(deref(u.Speaker)); raw != "" {
			label := labeler.Assign(raw)
			seg.Speaker = &label
		}
		segments = append(segments, seg)
	}
	return segments
}

func millisToSeconds(ms *int64) *float64 {
	if ms == nil {
		return nil
	}
	v := float64(*ms) / 1000.0
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// uploadFields returns the log fields of the upload being processed, if any
func uploadFields(ctx context.Context) []zap.Field {
	meta := jobcontext.GetUploadMetadata(ctx)
	if meta.UploadID == uuid.Nil {
		return nil
	}
	return []zap.Field{
		zap.String("upload_id", meta.UploadID.String()),
		zap.String("file_name", meta.FileName),
	}
}
