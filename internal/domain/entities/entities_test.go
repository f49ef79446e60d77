package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectInputFormat(t *testing.T) {
	cases := map[string]InputFormat{
		"chat.txt":        InputFormatChat,
		"export.CSV":      InputFormatChat,
		"call.mp3":        InputFormatAudio,
		"call.wav":        InputFormatAudio,
		"no-extension":    InputFormatAudio,
		"archive.txt.m4a": InputFormatAudio,
	}
	for name, want := range cases {
		assert.Equal(t, want, DetectInputFormat(name), name)
	}
}

func TestSegmentDefaults(t *testing.T) {
	speaker, text, start, end := Segment{}.Defaults()
	assert.Equal(t, SpeakerUnknown, speaker)
	assert.Equal(t, "", text)
	assert.Zero(t, start)
	assert.Zero(t, end)

	label, words, from, to := "SPEAKER_01", "hi", 1.5, 2.5
	speaker, text, start, end = Segment{Speaker: &label, Text: &words, Start: &from, End: &to}.Defaults()
	assert.Equal(t, "SPEAKER_01", speaker)
	assert.Equal(t, "hi", text)
	assert.Equal(t, 1.5, start)
	assert.Equal(t, 2.5, end)
}

func TestNewSummaryRecordTruncatesText(t *testing.T) {
	long := make([]rune, 0, 600)
	for i := 0; i < 600; i++ {
		long = append(long, 'é')
	}
	rec := NewSummaryRecord("a.txt", string(long), "ok")
	assert.Equal(t, SummaryTextLimit, len([]rune(rec.Text)))
	assert.Equal(t, "a.txt", rec.FileName)
	assert.Equal(t, "ok", rec.Summary)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", TruncateRunes("abc", 0))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "abc", TruncateRunes("abc", 3))
	assert.Equal(t, "abc", TruncateRunes("abc", 10))
	assert.Equal(t, "hé", TruncateRunes("héllo", 2))
}
