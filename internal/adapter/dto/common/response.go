package common

// ErrorResponse mirrors the error envelope written by handler.HandleError
type ErrorResponse struct {
	Code    int    `json:"code,omitempty" example:"201"`
	Message string `json:"message,omitempty" example:"Failed to parse uploaded file"`
	Info    string `json:"info,omitempty"`
}

// SuccessResponse mirrors the envelope written by handler.HandleSuccess
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"development"`
	Transcriber string `json:"transcriber" example:"assemblyai"`
	Summarizer  string `json:"summarizer" example:"groq"`
}
