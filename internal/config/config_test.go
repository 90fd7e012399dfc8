package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}
}

func TestDefaultMetricsAndPrimitives(t *testing.T) {
	cfg := Default()

	if len(cfg.Metrics) != 2 {
		t.Fatalf("Expected 2 default metrics, got %d", len(cfg.Metrics))
	}
	read := cfg.Metrics[0]
	if read.Name != "read" || read.BinStart != 150 || read.BinStop != 200 || read.BinStep != 2 {
		t.Errorf("Unexpected read metric: %+v", read)
	}
	write := cfg.Metrics[1]
	if write.Name != "write" || write.BinStart != 600 || write.BinStop != 3750 || write.BinStep != 40 {
		t.Errorf("Unexpected write metric: %+v", write)
	}

	wantOrder := []string{"mutex", "rwlock", "seqloq"}
	if len(cfg.Primitives) != len(wantOrder) {
		t.Fatalf("Expected %d primitives, got %d", len(wantOrder), len(cfg.Primitives))
	}
	for i, name := range wantOrder {
		if cfg.Primitives[i].Name != name {
			t.Errorf("Primitive %d: expected %s, got %s", i, name, cfg.Primitives[i].Name)
		}
	}
}

func TestMetricOutputFile(t *testing.T) {
	m := Metric{Name: "read"}
	if got := m.OutputFile(); got != "histogram.read.png" {
		t.Errorf("Expected histogram.read.png, got %s", got)
	}
}

func TestValidateRejectsBadBinRange(t *testing.T) {
	cfg := Default()
	cfg.Metrics[0].BinStep = 0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "bin step") {
		t.Errorf("Expected bin step error, got %v", err)
	}

	cfg = Default()
	cfg.Metrics[1].BinStop = cfg.Metrics[1].BinStart
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "no buckets") {
		t.Errorf("Expected empty range error, got %v", err)
	}
}

func TestValidateRejectsPathyNames(t *testing.T) {
	cfg := Default()
	cfg.Primitives[0].Name = "../mutex"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for primitive name with path separators")
	}

	cfg = Default()
	cfg.Metrics[0].Name = "read/../../etc"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for metric name with path separators")
	}
}

func TestValidateRejectsEmptySets(t *testing.T) {
	cfg := Default()
	cfg.Metrics = nil
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty metric list")
	}

	cfg = Default()
	cfg.Primitives = nil
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty primitive list")
	}
}
