package upload

// UploadStatusSuccess is the status reported for a processed upload
const UploadStatusSuccess = "success"

// UploadResponse is returned by POST /upload
type UploadResponse struct {
	Status  string `json:"status" example:"success"`
	Summary string `json:"summary" example:"Brando Thomas called to order roses from Martha's Flores, resulting in a confirmed shipment."`
}

// TranscriptRecordResponse is one row of GET /get-transcript
type TranscriptRecordResponse struct {
	Speaker string  `json:"speaker" example:"SPEAKER_00"`
	Text    string  `json:"text" example:"Hi, I'd like to order some roses."`
	Start   float64 `json:"start" example:"0"`
	End     float64 `json:"end" example:"1"`
}

// HistoryEntryResponse is one row of GET /history
type HistoryEntryResponse struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"call.mp3"`
	Timestamp string `json:"timestamp" example:"02:05 PM"`
	Status    string `json:"status" example:"Ready"`
}
