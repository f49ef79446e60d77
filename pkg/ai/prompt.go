package ai

// Generation settings shared by every summarization provider
const (
	SummaryTemperature = 0.1
	SummaryMaxTokens   = 100
)
