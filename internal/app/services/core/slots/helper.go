package slots

import "time"

// Overlaps reports whether a candidate interval conflicts with an existing
// one. Coincident starts or coincident ends conflict, as does any strict
// interior crossing and strict containment. Intervals that merely touch at a
// boundary (one ends exactly where the other starts) do not conflict.
func Overlaps(candidateStart, candidateEnd, existingStart, existingEnd time.Time) bool {
	if candidateStart.Equal(existingStart) || candidateEnd.Equal(existingEnd) {
		return true
	}
	if candidateStart.After(existingStart) && candidateStart.Before(existingEnd) {
		return true
	}
	if candidateEnd.After(existingStart) && candidateEnd.Before(existingEnd) {
		return true
	}
	return candidateStart.Before(existingStart) && candidateEnd.After(existingEnd)
}

// CutIntervals splits [start, end) into consecutive fixed-length intervals.
// The last interval ends at or before end; a trailing remainder shorter than
// the interval length is dropped. Returns nil when not even one interval fits.
func CutIntervals(start, end time.Time, interval time.Duration) [][2]time.Time {
	if interval <= 0 {
		return nil
	}
	var intervals [][2]time.Time
	for cursor := start; !cursor.Add(interval).After(end); cursor = cursor.Add(interval) {
		intervals = append(intervals, [2]time.Time{cursor, cursor.Add(interval)})
	}
	return intervals
}

// DayBounds returns the [midnight, next midnight) window containing day, in
// day's own location.
func DayBounds(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}
