package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
)

func TestToTranscriptResponseNeverNil(t *testing.T) {
	out := ToTranscriptResponse(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestToHistoryResponseKeepsOrder(t *testing.T) {
	out := ToHistoryResponse([]entities.HistoryEntry{
		{ID: 2, Name: "b.txt", Timestamp: "02:05 PM", Status: "Ready"},
		{ID: 1, Name: "a.txt", Timestamp: "02:01 PM", Status: "Ready"},
	})
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, "a.txt", out[1].Name)
}

func TestToUploadResponse(t *testing.T) {
	assert.Nil(t, ToUploadResponse(nil))

	res := ToUploadResponse(&entities.IngestionResult{Summary: "done"})
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "done", res.Summary)
}

func TestToSummaryListResponse(t *testing.T) {
	out := ToSummaryListResponse([]entities.SummaryRecord{{FileName: "a.txt", Summary: "s"}})
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "a.txt", out.Items[0].FileName)
}
