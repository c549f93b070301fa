package util

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"study-planner/models"
)

const hoursStack = "hours"

// NewWeeklyHoursChart builds a stacked bar chart of study hours: one bar per
// day, one series per subject in order of first appearance.
func NewWeeklyHoursChart(rows []models.ChartRow) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Study Hours Distribution",
			Width:     "700px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Study Hours Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}<br/>{a}: {c} hrs",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hours"}),
	)

	days := make([]string, 0, models.DaysPerWeek)
	dayIndex := make(map[models.DayLabel]int, models.DaysPerWeek)
	for i, d := range models.WeekDays {
		days = append(days, string(d))
		dayIndex[d] = i
	}
	bar.SetXAxis(days)

	var order []string
	hours := make(map[string][]int)
	for _, row := range rows {
		i, ok := dayIndex[row.Day]
		if !ok {
			continue
		}
		if _, seen := hours[row.Subject]; !seen {
			order = append(order, row.Subject)
			hours[row.Subject] = make([]int, models.DaysPerWeek)
		}
		hours[row.Subject][i] += row.Hours
	}

	for _, subject := range order {
		data := make([]opts.BarData, 0, models.DaysPerWeek)
		for i, h := range hours[subject] {
			data = append(data, opts.BarData{Name: days[i], Value: h})
		}
		bar.AddSeries(subject, data, charts.WithBarChartOpts(opts.BarChart{Stack: hoursStack}))
	}
	return bar
}

// PlotWeeklyHours renders the weekly hours chart as an HTML page into w.
func PlotWeeklyHours(rows []models.ChartRow, w io.Writer) error {
	if err := NewWeeklyHoursChart(rows).Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// PlotWeeklyHoursToFile writes the weekly hours chart to an HTML file.
func PlotWeeklyHoursToFile(rows []models.ChartRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer f.Close()

	if err := PlotWeeklyHours(rows, f); err != nil {
		return err
	}
	log.Printf("Study hours chart generated: %s", path)
	return nil
}
