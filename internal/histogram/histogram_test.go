package histogram

import "testing"

func TestEdgesReadRange(t *testing.T) {
	edges := Edges(150, 200, 2)
	if len(edges) != 25 {
		t.Fatalf("Expected 25 edges, got %d", len(edges))
	}
	if edges[0] != 150 || edges[1] != 152 || edges[24] != 198 {
		t.Errorf("Unexpected edge values: first=%v second=%v last=%v", edges[0], edges[1], edges[24])
	}
}

func TestEdgesWriteRange(t *testing.T) {
	edges := Edges(600, 3750, 40)
	if len(edges) != 79 {
		t.Fatalf("Expected 79 edges, got %d", len(edges))
	}
	if edges[0] != 600 || edges[1] != 640 || edges[78] != 3720 {
		t.Errorf("Unexpected edge values: first=%v second=%v last=%v", edges[0], edges[1], edges[78])
	}
}

func TestEdgesExcludeStop(t *testing.T) {
	edges := Edges(0, 10, 5)
	if len(edges) != 2 || edges[0] != 0 || edges[1] != 5 {
		t.Errorf("Expected edges {0, 5}, got %v", edges)
	}
}

func TestCounts(t *testing.T) {
	edges := []float64{0, 10, 20}
	samples := []int64{0, 5, 10, 19, 20, 25, -1}

	counts, dropped := Counts(edges, samples)
	if len(counts) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(counts))
	}
	// 0 and 5 land in [0,10); 10 and 19 in [10,20); 20 sits on the final
	// edge and is kept; 25 and -1 are out of range.
	if counts[0] != 2 || counts[1] != 3 {
		t.Errorf("Expected counts {2, 3}, got %v", counts)
	}
	if dropped != 2 {
		t.Errorf("Expected 2 dropped samples, got %d", dropped)
	}
}

func TestCountsTotalPreserved(t *testing.T) {
	edges := Edges(150, 200, 2)
	samples := []int64{150, 151, 152, 170, 197, 198, 199, 500}

	counts, dropped := Counts(edges, samples)
	total := dropped
	for _, c := range counts {
		total += c
	}
	if total != len(samples) {
		t.Errorf("Counts plus dropped should equal %d, got %d", len(samples), total)
	}
	// 199 is past the final edge 198, 500 is far out of range.
	if dropped != 2 {
		t.Errorf("Expected 2 dropped samples, got %d", dropped)
	}
}

func TestCountsDegenerateEdges(t *testing.T) {
	counts, dropped := Counts([]float64{5}, []int64{1, 2, 3})
	if counts != nil {
		t.Errorf("Expected no buckets, got %v", counts)
	}
	if dropped != 3 {
		t.Errorf("Expected all samples dropped, got %d", dropped)
	}
}
