package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"study-planner/config"
	"study-planner/di"
	"study-planner/models"
	"study-planner/presenter"
	"study-planner/util"
)

func main() {
	serve := flag.Bool("serve", false, "run the planner HTTP server")
	input := flag.String("input", "", "plan input file (.yaml or .json); defaults to the built-in sample")
	dailyHours := flag.Int("daily-hours", 0, "available study hours per day (1-12)")
	chartPath := flag.String("chart", "", "write the study hours chart to this HTML file")
	day := flag.String("day", "", "print the detailed timetable of one day")
	serverURL := flag.String("server", "", "ask a running planner server instead of planning locally; without -input or -daily-hours it shows the server's current plan")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *input != "" {
		cfg.InputPath = *input
	}
	if *chartPath != "" {
		cfg.ChartPath = *chartPath
	}

	container := di.NewContainer(cfg)

	if *serve {
		if _, err := container.PlanRefresherService.RefreshPlan(); err != nil {
			log.Printf("[MAIN] Initial plan build failed: %v", err)
		}
		container.PlanRefresherService.StartPeriodicJob(cfg.RefreshInterval())
		container.StudyPlannerHttpServer.Start()
		return
	}

	req := container.PlannerService.DefaultRequest()
	if cfg.InputPath != "" {
		loaded, err := util.ReadPlanRequest(cfg.InputPath)
		if err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		req = *loaded
	}
	if *dailyHours != 0 {
		req.DailyHours = *dailyHours
	}

	if *serverURL != "" {
		opts := remoteOptions{day: *day, chartPath: cfg.ChartPath}
		if *input != "" || *dailyHours != 0 {
			opts.request = &req
		}
		if err := runRemote(os.Stdout, di.NewPlannerAPI(*serverURL), opts); err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		return
	}

	result, err := container.PlannerService.BuildPlan(req)
	if err != nil {
		log.Fatalf("[MAIN] Failed to build plan: %v", err)
	}

	if *day != "" {
		label, err := models.ParseDayLabel(*day)
		if err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		out, err := presenter.RenderDay(result.Plan, label)
		if err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		fmt.Print(out)
		return
	}

	fmt.Println("Weekly Study Schedule")
	fmt.Print(presenter.RenderPlan(result.Plan))
	if weak := presenter.RenderWeakAreas(result.WeakAreas); weak != "" {
		fmt.Println()
		fmt.Println("Weak Areas / Focus Topics")
		fmt.Print(weak)
	}

	if cfg.ChartPath != "" {
		if err := util.PlotWeeklyHoursToFile(presenter.ToChartRows(result.Plan), cfg.ChartPath); err != nil {
			log.Printf("[MAIN] Failed to write chart: %v", err)
			os.Exit(1)
		}
	}
}
