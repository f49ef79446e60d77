package presenter

import (
	"github.com/johnquangdev/call-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/call-summarizer/internal/adapter/dto/upload"
	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

// ToTranscriptResponse converts utterances to transcript rows, never returning nil
func ToTranscriptResponse(utterances []entities.Utterance) []upload.TranscriptRecordResponse {
	out := make([]upload.TranscriptRecordResponse, 0, len(utterances))
	for _, u := range utterances {
		out = append(out, upload.TranscriptRecordResponse{
			Speaker: u.Speaker,
			Text:    u.Text,
			Start:   u.Start,
			End:     u.End,
		})
	}
	return out
}

// ToHistoryResponse converts history entries, keeping newest-first order
func ToHistoryResponse(entries []entities.HistoryEntry) []upload.HistoryEntryResponse {
	out := make([]upload.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, upload.HistoryEntryResponse{
			ID:        e.ID,
			Name:      e.Name,
			Timestamp: e.Timestamp,
			Status:    e.Status,
		})
	}
	return out
}

// ToUploadResponse converts a completed ingestion
func ToUploadResponse(result *entities.IngestionResult) *upload.UploadResponse {
	if result == nil {
		return nil
	}
	return &upload.UploadResponse{
		Status:  upload.UploadStatusSuccess,
		Summary: result.Summary,
	}
}

// ToSummaryListResponse converts the summary log
func ToSummaryListResponse(records []entities.SummaryRecord) *dto.SummaryListResponse {
	items := make([]dto.SummaryRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.SummaryRecordResponse{
			FileName: r.FileName,
			Text:     r.Text,
			Summary:  r.Summary,
		})
	}
	return &dto.SummaryListResponse{Items: items, Total: len(items)}
}
