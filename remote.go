package main

import (
	"fmt"
	"io"

	"study-planner/api/plannerapi"
	"study-planner/models"
	"study-planner/util"
)

// remoteOptions describes one CLI run against a planner server. A nil request
// asks for the plan the server built from its own input file.
type remoteOptions struct {
	request   *models.PlanRequest
	day       string
	chartPath string
}

func runRemote(out io.Writer, client plannerapi.PlannerAPI, o remoteOptions) error {
	if o.day != "" {
		label, err := models.ParseDayLabel(o.day)
		if err != nil {
			return err
		}
		if o.request == nil {
			text, err := client.GetDayTimetable(label)
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		}
		resp, err := client.CreatePlan(*o.request)
		if err != nil {
			return err
		}
		return writeDayView(out, resp, label)
	}

	if o.request != nil && o.chartPath == "" {
		text, err := client.CreatePlanText(*o.request)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Weekly Study Schedule")
		fmt.Fprint(out, text)
		return nil
	}

	var resp *models.PlanResponse
	var err error
	if o.request == nil {
		resp, err = client.GetCurrentPlan()
	} else {
		resp, err = client.CreatePlan(*o.request)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Weekly Study Schedule")
	fmt.Fprint(out, resp.Schedule)
	if resp.WeakAreas != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Weak Areas / Focus Topics")
		fmt.Fprint(out, resp.WeakAreas)
	}
	if o.chartPath != "" {
		return util.PlotWeeklyHoursToFile(resp.ChartRows, o.chartPath)
	}
	return nil
}

func writeDayView(out io.Writer, resp *models.PlanResponse, day models.DayLabel) error {
	for _, d := range resp.Days {
		if d.Day != day {
			continue
		}
		fmt.Fprintf(out, "%s Timetable\n", d.Day)
		for _, t := range d.Tasks {
			fmt.Fprintf(out, "- %s\n", t.Text)
		}
		return nil
	}
	return fmt.Errorf("day %q is not part of the plan", day)
}
