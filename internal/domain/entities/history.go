package entities

import "time"

// HistoryCategory classifies a history entry for display grouping.
type HistoryCategory string

const (
	HistoryEvent     HistoryCategory = "event"
	HistoryActivity  HistoryCategory = "activity"
	HistoryMilestone HistoryCategory = "milestone"
)

// HistoryEntry is one line of the life log. The log is append-only;
// entries are never mutated or removed and exist purely for display.
type HistoryEntry struct {
	ID        string          `json:"id"`
	Age       int             `json:"age"`
	Category  HistoryCategory `json:"category"`
	Text      string          `json:"text"`
	Timestamp time.Time       `json:"timestamp"`
}
