package entities

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// InputFormat is the kind of content carried by an upload
type InputFormat string

const (
	InputFormatChat  InputFormat = "chat"  // Line-oriented "Speaker: text" export
	InputFormatAudio InputFormat = "audio" // Recorded call audio
)

// DetectInputFormat decides the format from the file extension.
// .txt and .csv are chat exports, everything else is treated as audio.
func DetectInputFormat(fileName string) InputFormat {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case "txt", "csv":
		return InputFormatChat
	default:
		return InputFormatAudio
	}
}

// IngestionStage is a state of the ingestion state machine
type IngestionStage string

const (
	StageReceived            IngestionStage = "received"
	StageParsed              IngestionStage = "parsed"
	StageTranscriptPersisted IngestionStage = "transcript_persisted"
	StageSummarized          IngestionStage = "summarized"
	StageSummaryPersisted    IngestionStage = "summary_persisted"
	StageCompleted           IngestionStage = "completed"
	StageFailed              IngestionStage = "failed"
)

// IngestionResult describes one processed upload
type IngestionResult struct {
	UploadID   uuid.UUID      `json:"upload_id"`
	FileName   string         `json:"file_name"`
	Format     InputFormat    `json:"format"`
	Stage      IngestionStage `json:"stage"`
	Utterances []Utterance    `json:"utterances"`
	Text       string         `json:"text"`
	Summary    string         `json:"summary"`
	Language   string         `json:"language,omitempty"`

	// Diarized is false for chat uploads and for audio without speaker turns
	Diarized bool `json:"diarized"`

	// SummaryErr is set when Summary holds the fallback text
	SummaryErr error         `json:"-"`
	History    *HistoryEntry `json:"history,omitempty"`
}

// NewIngestionResult creates a result in the Received stage
func NewIngestionResult(fileName string, format InputFormat) *IngestionResult {
	return &IngestionResult{
		UploadID: uuid.New(),
		FileName: fileName,
		Format:   format,
		Stage:    StageReceived,
	}
}
