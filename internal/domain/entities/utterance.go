package entities

// SpeakerUnknown is the label used when a turn cannot be attributed to a speaker
const SpeakerUnknown = "UNKNOWN"

// Utterance represents a single speaker turn of a processed upload.
// Start and End are line positions for chat input and seconds for audio input.
type Utterance struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// TranscriptColumns is the column order of the persisted transcript table
var TranscriptColumns = []string{"speaker", "text", "start", "end"}
