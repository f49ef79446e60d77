package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/call-summarizer/pkg/jobcontext"
)

// Lock keys guarding the two single-file stores
const (
	TranscriptLockKey = "call-summarizer:lock:transcript"
	SummaryLockKey    = "call-summarizer:lock:summary"
)

// maxStagedExtLen caps the extension kept on staged files
const maxStagedExtLen = 16

// Transcriber is a speech-to-text collaborator producing speaker-tagged segments.
// Upload metadata travels on ctx (see jobcontext).
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, audio io.Reader) (*entities.AudioTranscript, error)
}

// Archiver keeps a copy of the raw upload
type Archiver interface {
	Archive(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
}

// Locker provides mutual exclusion around store writes
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// HistoryRecorder records a finished upload
type HistoryRecorder interface {
	Record(name string) entities.HistoryEntry
}

// Upload is one file received from a caller
type Upload struct {
	FileName string
	Body     io.Reader
}

// Service defines ingestion methods
type Service interface {
	Ingest(ctx context.Context, upload Upload) (*entities.IngestionResult, error)
}

// Pipeline runs an upload through parse, persist, summarize and record.
type Pipeline struct {
	transcripts repositories.TranscriptRepository
	summaries   repositories.SummaryRepository
	requester   *SummaryRequester
	history     HistoryRecorder
	chat        *ChatParser
	audio       *AudioNormalizer
	transcriber Transcriber
	archiver    Archiver
	locker      Locker
	stagingDir  string
	timeout     time.Duration
	logger      *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithTranscriber sets the audio collaborator. Without one, audio uploads fail.
func WithTranscriber(t Transcriber) Option {
	return func(p *Pipeline) error {
		p.transcriber = t
		return nil
	}
}

// WithArchiver enables best-effort archiving of raw uploads.
func WithArchiver(a Archiver) Option {
	return func(p *Pipeline) error {
		p.archiver = a
		return nil
	}
}

// WithLocker replaces the default in-process lock.
func WithLocker(l Locker) Option {
	return func(p *Pipeline) error {
		if l == nil {
			return errors.New("locker must not be nil")
		}
		p.locker = l
		return nil
	}
}

// WithStagingDir sets where uploads are staged.
// Default is os.TempDir().
func WithStagingDir(dir string) Option {
	return func(p *Pipeline) error {
		if dir == "" {
			dir = os.TempDir()
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create staging dir: %w", err)
		}
		p.stagingDir = dir
		return nil
	}
}

// WithTimeout bounds a whole ingestion run. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) error {
		if d < 0 {
			d = 0
		}
		p.timeout = d
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	transcripts repositories.TranscriptRepository,
	summaries repositories.SummaryRepository,
	requester *SummaryRequester,
	history HistoryRecorder,
	opts ...Option,
) (*Pipeline, error) {
	if transcripts == nil {
		return nil, ErrTranscriptRepositoryRequired
	}
	if summaries == nil {
		return nil, ErrSummaryRepositoryRequired
	}
	if requester == nil {
		return nil, ErrSummarizerRequired
	}
	if history == nil {
		return nil, ErrHistoryRequired
	}

	p := &Pipeline{
		transcripts: transcripts,
		summaries:   summaries,
		requester:   requester,
		history:     history,
		chat:        NewChatParser(),
		audio:       NewAudioNormalizer(),
		locker:      NewMutexLocker(),
		stagingDir:  os.TempDir(),
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Ingest processes one upload to completion.
// The returned result is never nil; on error its Stage is StageFailed.
func (p *Pipeline) Ingest(ctx context.Context, upload Upload) (*entities.IngestionResult, error) {
	name := strings.TrimSpace(upload.FileName)
	result := entities.NewIngestionResult(name, entities.DetectInputFormat(name))
	if name == "" {
		return p.fail(result, p.logger, fmt.Errorf("%w: %w", ErrInvalidUpload, entities.ErrEmptyFileName))
	}
	if upload.Body == nil {
		return p.fail(result, p.logger, fmt.Errorf("%w: empty body", ErrInvalidUpload))
	}

	ctx, cancel := jobcontext.Begin(ctx, result.UploadID, name, p.timeout)
	defer cancel()

	log := p.logger.With(
		zap.String("upload_id", result.UploadID.String()),
		zap.String("file_name", name),
		zap.String("format", string(result.Format)),
	)
	log.Info("📥 Upload received")

	staged, err := p.stage(result, upload.Body)
	if err != nil {
		return p.fail(result, log, fmt.Errorf("%w: %w", ErrStagingFailed, err))
	}
	defer p.release(staged, log)

	p.archive(ctx, result, staged, log)

	parsed, err := p.parse(ctx, result, staged, log)
	if err != nil {
		return p.fail(result, log, err)
	}
	result.Utterances = parsed.Utterances
	result.Text = parsed.Text
	result.Language = parsed.Language
	p.advance(result, entities.StageParsed, log, zap.Int("utterances", len(parsed.Utterances)))

	if err := p.saveTranscript(ctx, parsed.Utterances); err != nil {
		return p.fail(result, log, fmt.Errorf("%w: %w", ErrTranscriptPersistFailed, err))
	}
	p.advance(result, entities.StageTranscriptPersisted, log)

	summary, err := p.requester.Request(ctx, parsed.Text)
	if err != nil {
		log.Warn("❌ Summary unavailable, using fallback", zap.Error(err))
		summary = FallbackSummary
		result.SummaryErr = err
	}
	result.Summary = summary
	p.advance(result, entities.StageSummarized, log)

	if err := p.appendSummary(ctx, entities.NewSummaryRecord(name, parsed.Text, summary)); err != nil {
		log.Error("failed to append summary", zap.Error(err))
	} else {
		p.advance(result, entities.StageSummaryPersisted, log)
	}

	entry := p.history.Record(name)
	result.History = &entry
	p.advance(result, entities.StageCompleted, log, zap.Duration("elapsed", jobcontext.Elapsed(ctx)))

	return result, nil
}

func (p *Pipeline) advance(result *entities.IngestionResult, stage entities.IngestionStage, log *zap.Logger, fields ...zap.Field) {
	result.Stage = stage
	log.Info("ingestion stage", append([]zap.Field{zap.String("stage", string(stage))}, fields...)...)
}

func (p *Pipeline) fail(result *entities.IngestionResult, log *zap.Logger, err error) (*entities.IngestionResult, error) {
	log.Error("❌ Ingestion failed", zap.String("stage", string(result.Stage)), zap.Error(err))
	result.Stage = entities.StageFailed
	return result, err
}

// stage copies the body to a file named after the upload id.
// The extension is kept so providers can sniff the audio container.
func (p *Pipeline) stage(result *entities.IngestionResult, body io.Reader) (*os.File, error) {
	ext := filepath.Ext(result.FileName)
	if len(ext) > maxStagedExtLen {
		ext = ""
	}
	path := filepath.Join(p.stagingDir, result.UploadID.String()+ext)
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return f, nil
}

func (p *Pipeline) release(f *os.File, log *zap.Logger) {
	f.Close()
	if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
		log.Warn("failed to remove staged upload", zap.String("path", f.Name()), zap.Error(err))
	}
}

func (p *Pipeline) archive(ctx context.Context, result *entities.IngestionResult, f *os.File, log *zap.Logger) {
	if p.archiver == nil {
		return
	}
	info, err := f.Stat()
	if err != nil {
		log.Warn("skip archive", zap.Error(err))
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(result.FileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := fmt.Sprintf("uploads/%s/%s", result.UploadID, filepath.Base(result.FileName))

	err = p.archiver.Archive(ctx, objectName, io.NewSectionReader(f, 0, info.Size()), info.Size(), contentType)
	if err != nil {
		log.Warn("failed to archive upload", zap.String("object", objectName), zap.Error(err))
		return
	}
	log.Info("upload archived", zap.String("object", objectName))
}

func (p *Pipeline) parse(ctx context.Context, result *entities.IngestionResult, f *os.File, log *zap.Logger) (*ParseOutput, error) {
	switch result.Format {
	case entities.InputFormatChat:
		out, err := p.chat.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
		return out, nil

	default:
		if p.transcriber == nil {
			return nil, fmt.Errorf("%w: %w", ErrTranscriptionFailed, entities.ErrTranscriberUnavailable)
		}
		transcript, err := p.transcriber.Transcribe(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTranscriptionFailed, p.transcriber.Name(), err)
		}
		if transcript == nil {
			return nil, fmt.Errorf("%w: %w", ErrTranscriptionFailed, entities.ErrNoTranscript)
		}
		result.Diarized = transcript.Diarized
		if !transcript.Diarized {
			log.Warn("⚠️ Transcript has no speaker turns, speakers recorded as UNKNOWN",
				zap.String("provider", transcript.Provider),
				zap.Int("segments", len(transcript.Segments)),
			)
		}
		return p.audio.Normalize(transcript), nil
	}
}

func (p *Pipeline) saveTranscript(ctx context.Context, utterances []entities.Utterance) error {
	release, err := p.acquire(ctx, TranscriptLockKey)
	if err != nil {
		return err
	}
	defer release()
	return p.transcripts.Save(ctx, utterances)
}

func (p *Pipeline) appendSummary(ctx context.Context, record entities.SummaryRecord) error {
	release, err := p.acquire(ctx, SummaryLockKey)
	if err != nil {
		return err
	}
	defer release()
	return p.summaries.Append(ctx, record)
}

// acquire takes key, tagging locker faults apart from an expired or cancelled upload
func (p *Pipeline) acquire(ctx context.Context, key string) (func(), error) {
	release, err := p.locker.Acquire(ctx, key)
	if err == nil {
		return release, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
}
