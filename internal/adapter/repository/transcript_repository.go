package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// ErrCorruptFile is returned when a CSV store cannot be decoded
var ErrCorruptFile = errors.New("corrupt csv file")

// TranscriptRepository keeps the latest transcript as a CSV file
type TranscriptRepository struct {
	mu   sync.RWMutex
	path string
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(path string) *TranscriptRepository {
	return &TranscriptRepository{path: path}
}

// Path returns the backing file
func (r *TranscriptRepository) Path() string {
	return r.path
}

// Save overwrites the transcript file.
// Rows are written to a temp file in the same directory and renamed into place.
func (r *TranscriptRepository) Save(ctx context.Context, utterances []entities.Utterance) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create transcript dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".transcript-*.csv")
	if err != nil {
		return fmt.Errorf("create temp transcript: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(utterances)+1)
	rows = append(rows, entities.TranscriptColumns)
	for _, u := range utterances {
		rows = append(rows, []string{u.Speaker, u.Text, formatPosition(u.Start), formatPosition(u.End)})
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp transcript: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace transcript: %w", err)
	}
	return nil
}

// Load returns the saved transcript.
// A missing file yields an empty slice and no error.
func (r *TranscriptRepository) Load(ctx context.Context) ([]entities.Utterance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	utterances := make([]entities.Utterance, 0)

	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return utterances, nil
	}
	if err != nil {
		return utterances, err
	}
	defer f.Close()

	rows, err := readTable(f, entities.TranscriptColumns)
	if err != nil {
		return utterances, err
	}

	for i, row := range rows {
		start, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return make([]entities.Utterance, 0), fmt.Errorf("%w: row %d start: %v", ErrCorruptFile, i+2, err)
		}
		end, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return make([]entities.Utterance, 0), fmt.Errorf("%w: row %d end: %v", ErrCorruptFile, i+2, err)
		}
		utterances = append(utterances, entities.Utterance{
			Speaker: row[0],
			Text:    row[1],
			Start:   start,
			End:     end,
		})
	}
	return utterances, nil
}

func formatPosition(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// readTable reads a CSV stream whose first row must equal columns.
// An empty stream has no rows.
func readTable(rd io.Reader, columns []string) ([][]string, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if !slices.Equal(header, columns) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrCorruptFile, header)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return rows, nil
}
