package report

import (
	"fmt"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/lockbench/latplot/internal/chart"
	"github.com/lockbench/latplot/internal/config"
	"github.com/lockbench/latplot/internal/histogram"
	"github.com/lockbench/latplot/internal/samples"
	"github.com/lockbench/latplot/internal/stats"
)

// Result is one full run: every configured metric rendered to disk plus the
// per-series latency summaries.
type Result struct {
	RunID   string         `json:"run_id"`
	Metrics []MetricReport `json:"metrics"`
}

// MetricReport is the outcome for a single metric.
type MetricReport struct {
	Metric string         `json:"metric"`
	Image  string         `json:"image"`
	Series []SeriesReport `json:"series"`
}

// SeriesReport is one primitive's contribution to a metric's chart.
type SeriesReport struct {
	Primitive string        `json:"primitive"`
	Label     string        `json:"label"`
	Summary   stats.Summary `json:"summary"`
	Counts    []int         `json:"bucket_counts"`
	Dropped   int           `json:"dropped_from_chart"`
}

// Generator renders one histogram image per configured metric.
type Generator struct {
	cfg    *config.Config
	loader *samples.Loader
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:    cfg,
		loader: samples.NewLoader(cfg.DataDir),
	}
}

// Run processes the configured metrics in order and returns the run summary.
func (g *Generator) Run() (*Result, error) {
	result := &Result{RunID: ulid.Make().String()}
	for _, m := range g.cfg.Metrics {
		mr, err := g.reportMetric(m)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", m.Name, err)
		}
		result.Metrics = append(result.Metrics, mr)
	}
	return result, nil
}

// reportMetric loads every primitive's sample set for the metric, renders
// the overlaid histogram, and saves it. All sample sets must load before
// anything is drawn, so a failing series never leaves a partial image.
func (g *Generator) reportMetric(m config.Metric) (MetricReport, error) {
	edges := histogram.Edges(m.BinStart, m.BinStop, m.BinStep)
	out := filepath.Join(g.cfg.OutDir, m.OutputFile())
	mr := MetricReport{Metric: m.Name, Image: out}

	series := make([]chart.Series, 0, len(g.cfg.Primitives))
	for _, p := range g.cfg.Primitives {
		col, err := chart.ParseColor(p.Color)
		if err != nil {
			return MetricReport{}, fmt.Errorf("primitive %s: %w", p.Name, err)
		}

		values, err := g.loader.Load(p.Name, m.Name)
		if err != nil {
			return MetricReport{}, err
		}

		counts, dropped := histogram.Counts(edges, values)
		mr.Series = append(mr.Series, SeriesReport{
			Primitive: p.Name,
			Label:     p.Label,
			Summary:   stats.Summarize(values),
			Counts:    counts,
			Dropped:   dropped,
		})
		series = append(series, chart.Series{Label: p.Label, Color: col, Samples: values})
	}

	if err := chart.Render(m.Name, edges, series, out); err != nil {
		return MetricReport{}, err
	}

	log.Info().
		Str("metric", m.Name).
		Str("image", out).
		Int("series", len(series)).
		Msg("rendered histogram")
	return mr, nil
}
