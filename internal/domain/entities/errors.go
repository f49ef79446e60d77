package entities

import "errors"

// Domain errors
var (
	// Upload errors
	ErrEmptyFileName = errors.New("file name is required")

	// Transcription errors
	ErrTranscriberUnavailable = errors.New("transcriber not configured")
	ErrNoTranscript           = errors.New("transcription returned no result")

	// Summarization errors
	ErrSummarizerUnavailable = errors.New("summarizer not configured")
	ErrEmptySummary          = errors.New("summarizer returned empty output")
)
