// Package speaker assigns stable per-upload labels to raw speaker names.
package speaker

import (
	"fmt"
	"strings"
)

// LabelPrefix is the prefix of every canonical speaker label
const LabelPrefix = "SPEAKER_"

// Label formats the canonical label for the n-th distinct speaker.
// The index is zero-padded to two digits and grows past 99 (SPEAKER_100).
func Label(n int) string {
	return fmt.Sprintf("%s%02d", LabelPrefix, n)
}

// Labeler maps raw speaker tokens to canonical labels in first-seen order.
// A Labeler belongs to a single parse pass and is not safe for concurrent use.
type Labeler struct {
	labels map[string]string
	order  []string
}

// NewLabeler creates an empty labeler
func NewLabeler() *Labeler {
	return &Labeler{labels: make(map[string]string)}
}

// Assign returns the canonical label for raw, allocating the next one on first sight.
// Only surrounding whitespace is ignored; "Alice" and "alice" are different speakers.
func (l *Labeler) Assign(raw string) string {
	raw = strings.TrimSpace(raw)
	if label, ok := l.labels[raw]; ok {
		return label
	}
	label := Label(len(l.order))
	l.labels[raw] = label
	l.order = append(l.order, raw)
	return label
}

// Len returns the number of distinct speakers seen
func (l *Labeler) Len() int {
	return len(l.order)
}

// Labels returns a copy of the raw token to label mapping
func (l *Labeler) Labels() map[string]string {
	out := make(map[string]string, len(l.labels))
	for k, v := range l.labels {
		out[k] = v
	}
	return out
}
