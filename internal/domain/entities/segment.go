package entities

// Segment is a contiguous speech segment as returned by a transcription provider.
// Every field is optional; see Defaults.
type Segment struct {
	Speaker *string  `json:"speaker,omitempty"`
	Text    *string  `json:"text,omitempty"`
	Start   *float64 `json:"start,omitempty"`
	End     *float64 `json:"end,omitempty"`
}

// Defaults returns the segment fields with missing values replaced
func (s Segment) Defaults() (speaker, text string, start, end float64) {
	speaker = SpeakerUnknown
	if s.Speaker != nil && *s.Speaker != "" {
		speaker = *s.Speaker
	}
	if s.Text != nil {
		text = *s.Text
	}
	if s.Start != nil {
		start = *s.Start
	}
	if s.End != nil {
		end = *s.End
	}
	return speaker, text, start, end
}

// AudioTranscript is the result of transcribing one audio upload
type AudioTranscript struct {
	Language string    `json:"language,omitempty"`
	Segments []Segment `json:"segments"`
	Diarized bool      `json:"diarized"`
	Provider string    `json:"provider,omitempty"`
}
