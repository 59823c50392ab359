package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lumina/feed"
)

// PlotFeedSections renders an HTML bar chart of section sizes to w.
func PlotFeedSections(title string, sizes []feed.SectionSize, w io.Writer) error {
	names := make([]string, 0, len(sizes))
	data := make([]opts.BarData, 0, len(sizes))
	total := 0
	for _, s := range sizes {
		names = append(names, s.Name)
		data = append(data, opts.BarData{Name: s.Name, Value: s.Count})
		total += s.Count
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d items", total),
		}),
	)

	bar.SetXAxis(names).AddSeries("Items", data,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render feed chart: %w", err)
	}
	return nil
}
