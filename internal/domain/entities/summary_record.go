package entities

// SummaryTextLimit is the maximum number of characters of transcript text kept in a summary row
const SummaryTextLimit = 500

// NoSummaryAvailable is returned when the summary log has no readable row
const NoSummaryAvailable = "No summary available."

// SummaryColumns is the column order of the summary log
var SummaryColumns = []string{"file_name", "text", "summary"}

// SummaryRecord is one row of the append-only summary log
type SummaryRecord struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
	Summary  string `json:"summary"`
}

// NewSummaryRecord builds a record, truncating text to SummaryTextLimit characters
func NewSummaryRecord(fileName, text, summary string) SummaryRecord {
	return SummaryRecord{
		FileName: fileName,
		Text:     TruncateRunes(text, SummaryTextLimit),
		Summary:  summary,
	}
}

// TruncateRunes returns at most n characters of s without splitting a UTF-8 sequence
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
