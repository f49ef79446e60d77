package history

import (
	"sync"
	"time"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// Service defines upload history methods
type Service interface {
	Record(name string) entities.HistoryEntry
	List() []entities.HistoryEntry
}

// Clock returns the current time
type Clock func() time.Time

// UploadHistory keeps processed uploads in memory, newest first.
// IDs are len+1 at insertion time and reset on restart.
type UploadHistory struct {
	mu      sync.RWMutex
	entries []entities.HistoryEntry
	now     Clock
}

// NewUploadHistory creates an empty history. A nil clock uses time.Now.
func NewUploadHistory(now Clock) *UploadHistory {
	if now == nil {
		now = time.Now
	}
	return &UploadHistory{
		entries: make([]entities.HistoryEntry, 0),
		now:     now,
	}
}

// Record prepends a Ready entry for name
func (h *UploadHistory) Record(name string) entities.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := entities.HistoryEntry{
		ID:        len(h.entries) + 1,
		Name:      name,
		Timestamp: h.now().Format(entities.HistoryTimeLayout),
		Status:    entities.HistoryStatusReady,
	}
	h.entries = append([]entities.HistoryEntry{entry}, h.entries...)
	return entry
}

// List returns a copy of the entries, newest first
func (h *UploadHistory) List() []entities.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]entities.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
