package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// SummaryRepository is an append-only CSV log of summaries
type SummaryRepository struct {
	mu   sync.RWMutex
	path string
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(path string) *SummaryRepository {
	return &SummaryRepository{path: path}
}

// Path returns the backing file
func (r *SummaryRepository) Path() string {
	return r.path
}

// Append writes one row, adding the header when the file is new or empty
func (r *SummaryRepository) Append(ctx context.Context, record entities.SummaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open summary log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat summary log: %w", err)
	}

	rows := make([][]string, 0, 2)
	if info.Size() == 0 {
		rows = append(rows, entities.SummaryColumns)
	}
	rows = append(rows, []string{record.FileName, record.Text, record.Summary})

	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		return fmt.Errorf("append summary: %w", err)
	}
	return f.Close()
}

// List returns every row in insertion order
func (r *SummaryRepository) List(ctx context.Context) ([]entities.SummaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]entities.SummaryRecord, 0)

	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return records, err
	}
	defer f.Close()

	rows, err := readTable(f, entities.SummaryColumns)
	if err != nil {
		return records, err
	}
	for _, row := range rows {
		records = append(records, entities.SummaryRecord{FileName: row[0], Text: row[1], Summary: row[2]})
	}
	return records, nil
}

// Latest returns the summary of the last row.
// Missing, empty and unreadable logs all yield entities.NoSummaryAvailable.
func (r *SummaryRepository) Latest(ctx context.Context) string {
	records, err := r.List(ctx)
	if err != nil || len(records) == 0 {
		return entities.NoSummaryAvailable
	}
	return records[len(records)-1].Summary
}
