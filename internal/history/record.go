// Package history records the outcome of every manifest pkgsort processes.
// The latest content hash per path lets repeated runs skip files that are
// already sorted.
package history

import "time"

// Outcomes recorded for a processed file.
const (
	OutcomeUnchanged = "unchanged"
	OutcomeSorted    = "sorted"
	OutcomeWouldSort = "would-sort"
	OutcomeSkipped   = "skipped"
	OutcomeError     = "error"
)

// Entry is a persisted record of one file being processed.
type Entry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Path        string    `json:"path"`
	Outcome     string    `json:"outcome"`
	ContentHash string    `json:"content_hash,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
}

// Clean reports whether the entry describes a file left in sorted order.
func (e *Entry) Clean() bool {
	return e.Outcome == OutcomeUnchanged || e.Outcome == OutcomeSorted
}
