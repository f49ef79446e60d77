package repositories

import (
	"context"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// TranscriptRepository is the single-slot store holding the latest transcript
type TranscriptRepository interface {
	// Save replaces the stored transcript with utterances
	Save(ctx context.Context, utterances []entities.Utterance) error

	// Load returns the stored transcript, or an empty slice when none was saved
	Load(ctx context.Context) ([]entities.Utterance, error)
}

// SummaryRepository is the append-only log of processed uploads
type SummaryRepository interface {
	// Append adds one row without touching existing rows
	Append(ctx context.Context, record entities.SummaryRecord) error

	// Latest returns the summary of the last row or a sentinel when none is readable
	Latest(ctx context.Context) string

	// List returns every row in insertion order
	List(ctx context.Context) ([]entities.SummaryRecord, error)
}
