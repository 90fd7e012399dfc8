// Package histogram computes fixed-range histogram buckets.
package histogram

import "sort"

// Edges returns the bucket boundaries start, start+step, ... strictly below
// stop. A sequence of n edges defines n-1 buckets. The range is fixed by
// configuration, never derived from the data.
func Edges(start, stop, step int) []float64 {
	var edges []float64
	for v := start; v < stop; v += step {
		edges = append(edges, float64(v))
	}
	return edges
}

// Counts buckets samples into len(edges)-1 buckets. Buckets are half-open
// [edges[i], edges[i+1]), except the last which also includes its right
// edge. Samples outside the edge range are not counted; the second return
// value reports how many were dropped.
func Counts(edges []float64, samples []int64) ([]int, int) {
	if len(edges) < 2 {
		return nil, len(samples)
	}

	counts := make([]int, len(edges)-1)
	last := edges[len(edges)-1]
	dropped := 0
	for _, s := range samples {
		v := float64(s)
		switch {
		case v < edges[0] || v > last:
			dropped++
		case v == last:
			counts[len(counts)-1]++
		default:
			// Smallest i with edges[i] >= v; step back unless v sits
			// exactly on an edge.
			i := sort.SearchFloat64s(edges, v)
			if i == len(edges) || edges[i] != v {
				i--
			}
			counts[i]++
		}
	}
	return counts, dropped
}
