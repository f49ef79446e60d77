package dto

// SummaryResponse is returned by GET /get-summary
type SummaryResponse struct {
	Summary string `json:"summary" example:"No summary available."`
}

// SummaryRecordResponse is one row of the summary log
type SummaryRecordResponse struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
	Summary  string `json:"summary"`
}

// SummaryListResponse wraps the full summary log
type SummaryListResponse struct {
	Items []SummaryRecordResponse `json:"items"`
	Total int                     `json:"total"`
}
