// Package report renders the imported dataset into a standalone HTML
// page with ECharts visualisations: scene durations, sequence lengths
// and per-object grasp coverage.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// histogramBuckets is how many bars the duration histogram uses.
const histogramBuckets = 12

// Builder renders report data into HTML.
type Builder struct{}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Render writes the report page to w.
func (b *Builder) Render(data *domain.ReportData, w io.Writer) error {
	if data == nil {
		return domain.ErrInvalidInput
	}

	page := components.NewPage()
	page.PageTitle = "BoxED dataset report"

	if chart := durationHistogram(data.DurationsMS); chart != nil {
		page.AddCharts(chart)
	}
	if chart := sequenceLengthChart(data.SequenceLengths); chart != nil {
		page.AddCharts(chart)
	}
	if chart := coverageChart(data.Coverage); chart != nil {
		page.AddCharts(chart)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// durationHistogram buckets the scene durations into a bar chart.
func durationHistogram(durationsMS []float64) *charts.Bar {
	if len(durationsMS) == 0 {
		return nil
	}

	min, max := durationsMS[0], durationsMS[0]
	for _, d := range durationsMS {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	width := (max - min) / histogramBuckets
	if width == 0 {
		width = 1
	}

	counts := make([]int, histogramBuckets)
	for _, d := range durationsMS {
		bucket := int((d - min) / width)
		if bucket >= histogramBuckets {
			bucket = histogramBuckets - 1
		}
		counts[bucket]++
	}

	labels := make([]string, histogramBuckets)
	values := make([]opts.BarData, histogramBuckets)
	for i := range counts {
		labels[i] = fmt.Sprintf("%.0fs", math.Round((min+width*float64(i))/1000))
		values[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Scene durations",
			Subtitle: fmt.Sprintf("%d scenes, bucket width %.1fs", len(durationsMS), width/1000),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("scenes", values)
	return bar
}

// sequenceLengthChart counts scenes by the number of packed objects.
func sequenceLengthChart(lengths []int) *charts.Bar {
	if len(lengths) == 0 {
		return nil
	}

	max := 0
	for _, l := range lengths {
		if l > max {
			max = l
		}
	}

	counts := make([]int, max+1)
	for _, l := range lengths {
		counts[l]++
	}

	var labels []string
	var values []opts.BarData
	for l := 1; l <= max; l++ {
		labels = append(labels, fmt.Sprintf("%d", l))
		values = append(values, opts.BarData{Value: counts[l]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Packing sequence lengths",
			Subtitle: "objects packed per scene",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("scenes", values)
	return bar
}

// coverageChart shows per-object grasp counts in catalog order.
func coverageChart(coverage []domain.ObjectCoverage) *charts.Bar {
	if len(coverage) == 0 {
		return nil
	}

	labels := make([]string, len(coverage))
	picks := make([]opts.BarData, len(coverage))
	for i := range coverage {
		labels[i] = coverage[i].Name
		picks[i] = opts.BarData{Value: coverage[i].PickCount}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Object coverage",
			Subtitle: "recorded grasps per catalog object",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45, Show: opts.Bool(true)}}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("grasps", picks)
	return bar
}
