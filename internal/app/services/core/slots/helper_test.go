package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	testCases := []struct {
		name      string
		candidate [2]time.Time
		existing  [2]time.Time
		expected  bool
	}{
		{"disjoint before", [2]time.Time{at(-120), at(-60)}, [2]time.Time{at(0), at(60)}, false},
		{"disjoint after", [2]time.Time{at(120), at(180)}, [2]time.Time{at(0), at(60)}, false},
		{"boundary touch candidate ends at existing start", [2]time.Time{at(-60), at(0)}, [2]time.Time{at(0), at(60)}, false},
		{"boundary touch candidate starts at existing end", [2]time.Time{at(60), at(120)}, [2]time.Time{at(0), at(60)}, false},
		{"same start", [2]time.Time{at(0), at(30)}, [2]time.Time{at(0), at(60)}, true},
		{"same end", [2]time.Time{at(30), at(60)}, [2]time.Time{at(0), at(60)}, true},
		{"identical", [2]time.Time{at(0), at(60)}, [2]time.Time{at(0), at(60)}, true},
		{"candidate start strictly inside", [2]time.Time{at(30), at(90)}, [2]time.Time{at(0), at(60)}, true},
		{"candidate end strictly inside", [2]time.Time{at(-30), at(30)}, [2]time.Time{at(0), at(60)}, true},
		{"candidate strictly contains existing", [2]time.Time{at(-30), at(90)}, [2]time.Time{at(0), at(60)}, true},
		{"existing strictly contains candidate", [2]time.Time{at(10), at(50)}, [2]time.Time{at(0), at(60)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.candidate[0], tc.candidate[1], tc.existing[0], tc.existing[1])
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCutIntervals(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("exact fit yields consecutive intervals", func(t *testing.T) {
		intervals := CutIntervals(start, start.Add(time.Hour), 15*time.Minute)
		assert.Len(t, intervals, 4)
		assert.Equal(t, start, intervals[0][0])
		assert.Equal(t, start.Add(15*time.Minute), intervals[0][1])
		assert.Equal(t, start.Add(45*time.Minute), intervals[3][0])
		assert.Equal(t, start.Add(time.Hour), intervals[3][1])
	})

	t.Run("trailing remainder is dropped", func(t *testing.T) {
		intervals := CutIntervals(start, start.Add(70*time.Minute), 15*time.Minute)
		assert.Len(t, intervals, 4)
		assert.Equal(t, start.Add(time.Hour), intervals[3][1])
	})

	t.Run("window shorter than interval yields nothing", func(t *testing.T) {
		assert.Nil(t, CutIntervals(start, start.Add(10*time.Minute), 15*time.Minute))
	})

	t.Run("non-positive interval yields nothing", func(t *testing.T) {
		assert.Nil(t, CutIntervals(start, start.Add(time.Hour), 0))
	})
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	from, to := DayBounds(day)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), to)
}
