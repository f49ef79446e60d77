package ingestion

import "errors"

// Construction errors
var (
	ErrTranscriptRepositoryRequired = errors.New("transcript repository required")
	ErrSummaryRepositoryRequired    = errors.New("summary repository required")
	ErrSummarizerRequired           = errors.New("summarizer required")
	ErrHistoryRequired              = errors.New("upload history required")
)

// Fatal ingestion errors
var (
	ErrInvalidUpload           = errors.New("invalid upload")
	ErrStagingFailed           = errors.New("failed to stage upload")
	ErrParseFailed             = errors.New("failed to parse upload")
	ErrTranscriptionFailed     = errors.New("failed to transcribe audio")
	ErrTranscriptPersistFailed = errors.New("failed to persist transcript")
)

// ErrLockUnavailable means the store lock could not be taken while the upload was still live
var ErrLockUnavailable = errors.New("store lock unavailable")

// ErrSummarizationFailed is absorbed into the fallback summary and never fails an upload
var ErrSummarizationFailed = errors.New("summarization failed")
