// Package presenter turns a WeeklyPlan into the schedule listing and the
// rows behind the hours-by-day chart.
package presenter

import (
	"fmt"
	"sort"
	"strings"

	"study-planner/models"
)

// RenderPlan lists every day followed by one "- task" bullet per record.
func RenderPlan(plan models.WeeklyPlan) string {
	var b strings.Builder
	for _, d := range plan.Days {
		writeDay(&b, string(d.Day), d.Tasks)
	}
	return b.String()
}

// RenderDay renders the detailed timetable of a single day.
func RenderDay(plan models.WeeklyPlan, day models.DayLabel) (string, error) {
	tasks := plan.Tasks(day)
	if tasks == nil {
		return "", fmt.Errorf("day %q is not part of the plan", day)
	}
	var b strings.Builder
	writeDay(&b, string(day)+" Timetable", tasks)
	return b.String(), nil
}

// RenderWeakAreas lists focus topics as "- Subject: topic", sorted by subject.
func RenderWeakAreas(weakAreas map[string]string) string {
	subjects := make([]string, 0, len(weakAreas))
	for s := range weakAreas {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	var b strings.Builder
	for _, s := range subjects {
		fmt.Fprintf(&b, "- %s: %s\n", s, weakAreas[s])
	}
	return b.String()
}

// ToChartRows emits one (day, subject, hours) row per scheduled record, in
// day order and then assignment order. Placeholders are left out.
func ToChartRows(plan models.WeeklyPlan) []models.ChartRow {
	rows := []models.ChartRow{}
	for _, d := range plan.Days {
		for _, r := range d.Tasks {
			if r.Placeholder || r.Hours <= 0 {
				continue
			}
			rows = append(rows, models.ChartRow{Day: d.Day, Subject: r.Subject, Hours: r.Hours})
		}
	}
	return rows
}

// TotalHoursBySubject sums the scheduled hours of each subject.
func TotalHoursBySubject(plan models.WeeklyPlan) map[string]int {
	totals := make(map[string]int)
	for _, row := range ToChartRows(plan) {
		totals[row.Subject] += row.Hours
	}
	return totals
}

func writeDay(b *strings.Builder, title string, tasks []models.AllocationRecord) {
	b.WriteString(title)
	b.WriteString("\n")
	for _, t := range tasks {
		b.WriteString("- ")
		b.WriteString(t.String())
		b.WriteString("\n")
	}
}
