package entities

// HistoryStatusReady marks an upload that finished processing
const HistoryStatusReady = "Ready"

// HistoryTimeLayout formats the history timestamp as a 12-hour clock, e.g. "09:41 AM"
const HistoryTimeLayout = "03:04 PM"

// HistoryEntry is one processed upload shown in the UI sidebar
type HistoryEntry struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}
