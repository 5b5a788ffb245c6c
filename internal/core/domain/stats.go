package domain

import "sort"

// AggregateResult holds the descriptive statistics of one calculation run.
// Longest and Shortest are nil when no available record exists; callers must
// check ProcessedCount before dereferencing them.
type AggregateResult struct {
	TotalSeconds   int64
	ProcessedCount int
	FailedCount    int
	AverageSeconds float64
	MedianSeconds  float64
	Longest        *VideoRecord
	Shortest       *VideoRecord
}

// Aggregate computes statistics over an ordered sequence of records.
// Unavailable records are excluded from duration totals but counted in
// FailedCount. An empty available set yields zeroed statistics, not an error.
func Aggregate(records []VideoRecord) AggregateResult {
	var result AggregateResult
	var durations []int64

	for i := range records {
		rec := &records[i]
		if !rec.Available {
			result.FailedCount++
			continue
		}

		result.ProcessedCount++
		result.TotalSeconds += rec.DurationSeconds
		durations = append(durations, rec.DurationSeconds)

		// Ties keep the first occurrence in input order.
		if result.Longest == nil || rec.DurationSeconds > result.Longest.DurationSeconds {
			result.Longest = rec
		}
		if result.Shortest == nil || rec.DurationSeconds < result.Shortest.DurationSeconds {
			result.Shortest = rec
		}
	}

	if result.ProcessedCount == 0 {
		return result
	}

	result.AverageSeconds = float64(result.TotalSeconds) / float64(result.ProcessedCount)
	result.MedianSeconds = median(durations)

	return result
}

func median(durations []int64) float64 {
	sorted := make([]int64, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
