// Package stats aggregates latency sample sets into summary statistics.
package stats

import (
	"github.com/HdrHistogram/hdrhistogram-go"
)

// Track latencies from 1ns up to 60s with 3 significant figures.
const (
	lowestTrackable  = 1
	highestTrackable = 60_000_000_000
)

// Summary describes one sample set's latency distribution. All values are
// nanoseconds. Min, Max and Mean are exact; the percentiles come from an HDR
// histogram and carry its 3-significant-figure resolution.
type Summary struct {
	Count int64 `json:"count"`
	Min   int64 `json:"min_ns"`
	Max   int64 `json:"max_ns"`
	Mean  int64 `json:"mean_ns"`
	P50   int64 `json:"p50_ns"`
	P90   int64 `json:"p90_ns"`
	P99   int64 `json:"p99_ns"`
}

// Summarize computes the latency summary for one sample set.
func Summarize(values []int64) Summary {
	h := hdrhistogram.New(lowestTrackable, highestTrackable, 3)

	var s Summary
	var sum int64
	for _, v := range values {
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Count++
		sum += v

		clamped := v
		if clamped < h.LowestTrackableValue() {
			clamped = h.LowestTrackableValue()
		}
		if clamped > h.HighestTrackableValue() {
			clamped = h.HighestTrackableValue()
		}
		_ = h.RecordValue(clamped)
	}

	if s.Count > 0 {
		s.Mean = sum / s.Count
		s.P50 = h.ValueAtQuantile(50)
		s.P90 = h.ValueAtQuantile(90)
		s.P99 = h.ValueAtQuantile(99)
	}
	return s
}
