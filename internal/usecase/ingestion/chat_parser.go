package ingestion

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/pkg/speaker"
)

// MaxChatLineBytes bounds a single chat line
const MaxChatLineBytes = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseOutput is the canonical form of one upload
type ParseOutput struct {
	Utterances []entities.Utterance
	Text       string
	Language   string
}

// ChatParser turns "Speaker: text" chat exports into utterances
type ChatParser struct{}

// NewChatParser creates a ChatParser
func NewChatParser() *ChatParser {
	return &ChatParser{}
}

// Parse reads r line by line.
// Blank lines are skipped but still count towards the line index used for start/end.
// A line without ':' is attributed to UNKNOWN.
func (p *ChatParser) Parse(r io.Reader) (*ParseOutput, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxChatLineBytes)

	labeler := speaker.NewLabeler()
	out := &ParseOutput{Utterances: make([]entities.Utterance, 0)}
	texts := make([]string, 0)

	for index := 0; scanner.Scan(); index++ {
		raw := scanner.Bytes()
		if index == 0 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: invalid UTF-8", index+1)
		}

		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}

		u := entities.Utterance{
			Speaker: entities.SpeakerUnknown,
			Text:    line,
			Start:   float64(index),
			End:     float64(index + 1),
		}
		if name, content, found := strings.Cut(line, ":"); found {
			u.Speaker = labeler.Assign(name)
			u.Text = strings.TrimSpace(content)
		}

		out.Utterances = append(out.Utterances, u)
		texts = append(texts, u.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read chat: %w", err)
	}

	out.Text = strings.Join(texts, " ")
	return out, nil
}
