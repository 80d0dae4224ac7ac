package runner

import "nathanbeddoewebdev/pkgsort/internal/history"

// Summary counts results by outcome.
type Summary struct {
	Sorted    int `json:"sorted"`
	Unchanged int `json:"unchanged"`
	WouldSort int `json:"would_sort"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case history.OutcomeSorted:
			s.Sorted++
		case history.OutcomeUnchanged:
			s.Unchanged++
		case history.OutcomeWouldSort:
			s.WouldSort++
		case history.OutcomeSkipped:
			s.Skipped++
		case history.OutcomeError:
			s.Errors++
		}
	}
	return s
}

// Failed reports whether the run should exit non-zero: any error, or in
// check mode any file that would change.
func (s Summary) Failed(check bool) bool {
	return s.Errors > 0 || (check && s.WouldSort > 0)
}
