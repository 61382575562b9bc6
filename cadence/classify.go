// ABOUTME: Classification of next-due dates against today
// ABOUTME: Buckets a company into overdue, due-today, or upcoming
package cadence

import "github.com/Sankar2i/calendar/models"

type Classification struct {
	Status     models.Status `json:"status"`
	IsOverdue  bool          `json:"is_overdue"`
	IsDueToday bool          `json:"is_due_today"`
}

// Classify compares two ISO dates. Lexicographic order of yyyy-mm-dd
// strings is chronological order.
func Classify(nextDue, today string) Classification {
	switch {
	case nextDue < today:
		return Classification{Status: models.StatusOverdue, IsOverdue: true}
	case nextDue == today:
		return Classification{Status: models.StatusDueToday, IsDueToday: true}
	default:
		return Classification{Status: models.StatusUpcoming}
	}
}
