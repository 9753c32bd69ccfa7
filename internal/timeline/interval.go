package timeline

import "member-history-backend/internal/models"

// Interval is an inclusive date range. open means the range has no end.
type Interval interface {
	Bounds() (start, end models.Date, open bool)
}

// Contains reports whether date lies within iv, bounds included.
func Contains(iv Interval, date models.Date) bool {
	start, end, open := iv.Bounds()
	if start.IsZero() || date.Before(start) {
		return false
	}
	return open || !date.After(end)
}

// ContainingInterval returns the first interval containing date. Overlapping
// intervals are not merged; earlier entries win.
func ContainingInterval[T Interval](date models.Date, intervals []T) (T, bool) {
	for _, iv := range intervals {
		if Contains(iv, date) {
			return iv, true
		}
	}
	var zero T
	return zero, false
}
