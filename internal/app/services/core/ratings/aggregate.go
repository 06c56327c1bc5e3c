package ratings

// Aggregate is the incremental mean over the ratings contributed to an
// entity. The zero value represents "no ratings yet".
type Aggregate struct {
	Mean  float64
	Count int
}

// Add folds one new rating into the mean.
func (a Aggregate) Add(value float64) Aggregate {
	return Aggregate{
		Mean:  (a.Mean*float64(a.Count) + value) / float64(a.Count+1),
		Count: a.Count + 1,
	}
}

// Edit replaces one previously contributed rating. Must not be called with
// Count == 0; the call sites guard this.
func (a Aggregate) Edit(oldValue, newValue float64) Aggregate {
	return Aggregate{
		Mean:  (a.Mean*float64(a.Count) - oldValue + newValue) / float64(a.Count),
		Count: a.Count,
	}
}

// Remove withdraws one previously contributed rating. Removing the last
// rating resets the aggregate to its zero value.
func (a Aggregate) Remove(value float64) Aggregate {
	if a.Count-1 == 0 {
		return Aggregate{}
	}
	return Aggregate{
		Mean:  (a.Mean*float64(a.Count) - value) / float64(a.Count-1),
		Count: a.Count - 1,
	}
}
