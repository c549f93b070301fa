package models

// ChartRow is one bar segment of the hours-by-day chart.
type ChartRow struct {
	Day     DayLabel `json:"day"`
	Subject string   `json:"subject"`
	Hours   int      `json:"hours"`
}
