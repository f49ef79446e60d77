package ingestion

import (
	"math"
	"strings"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// AudioNormalizer converts provider segments into utterances.
// Speakers pass through unchanged; providers already emit canonical labels.
type AudioNormalizer struct{}

// NewAudioNormalizer creates an AudioNormalizer
func NewAudioNormalizer() *AudioNormalizer {
	return &AudioNormalizer{}
}

// Normalize emits one utterance per segment, in order, keeping empty ones
func (n *AudioNormalizer) Normalize(transcript *entities.AudioTranscript) *ParseOutput {
	out := &ParseOutput{Utterances: make([]entities.Utterance, 0)}
	if transcript == nil {
		return out
	}
	out.Language = transcript.Language

	texts := make([]string, 0, len(transcript.Segments))
	for _, seg := range transcript.Segments {
		who, text, start, end := seg.Defaults()
		text = strings.TrimSpace(text)

		out.Utterances = append(out.Utterances, entities.Utterance{
			Speaker: who,
			Text:    text,
			Start:   round2(start),
			End:     round2(end),
		})
		if text != "" {
			texts = append(texts, text)
		}
	}

	out.Text = strings.Join(texts, " ")
	return out
}

// round2 rounds to hundredths, ties to even
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
