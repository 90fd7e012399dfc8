// Package report turns benchmark sample files into histogram images.
//
// A [Generator] processes the configured metrics in order. For each metric it
// loads one sample set per primitive, buckets the samples over the metric's
// fixed edge range, renders the overlaid histogram to
// histogram.<metric>.png, and computes a per-series latency summary:
//
//	gen := report.NewGenerator(cfg)
//	result, err := gen.Run()
//
// The metric reports are independent of each other. A failure anywhere —
// missing file, malformed sample line, unwritable image — aborts the run at
// that point, but images already saved for earlier metrics stay on disk.
// There is no partial output for the failing metric itself: nothing is
// rendered until all of its sample sets have loaded.
//
// The returned [Result] carries a ULID run identifier and, per metric, the
// image path and per-primitive bucket counts and summaries, ready for the
// output package to print.
package report
