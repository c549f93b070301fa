package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"study-planner/models"
	"study-planner/util"
)

// PlanRefresherService keeps the current plan in sync with the input file.
// Each tick re-reads the file and rebuilds the plan from scratch when the
// inputs differ from the last successful build. Without an input path it
// plans the default inputs once.
type PlanRefresherService struct {
	plannerService *PlannerService
	inputPath      string

	mu        sync.RWMutex
	current   *models.PlanResult
	lastInput models.PlanRequest
}

// NewPlanRefresherService constructs a new refresher with dependencies.
func NewPlanRefresherService(plannerService *PlannerService, inputPath string) *PlanRefresherService {
	return &PlanRefresherService{
		plannerService: plannerService,
		inputPath:      inputPath,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (pr *PlanRefresherService) StartPeriodicJob(interval time.Duration) {
	go pr.startPeriodicJob(interval)
}

func (pr *PlanRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := pr.RefreshPlan(); err != nil {
			log.Printf("[PlanRefresherService] RefreshPlan returned error: %v", err)
		}
	}
}

// RefreshPlan reloads the inputs and rebuilds the plan if they changed. It
// reports whether a new plan was published. On error the previous plan stays.
func (pr *PlanRefresherService) RefreshPlan() (bool, error) {
	req, err := pr.loadInput()
	if err != nil {
		return false, err
	}

	pr.mu.RLock()
	unchanged := pr.current != nil && pr.lastInput == req
	pr.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	result, err := pr.plannerService.BuildPlan(req)
	if err != nil {
		return false, fmt.Errorf("failed to rebuild plan: %w", err)
	}

	pr.mu.Lock()
	pr.current = result
	pr.lastInput = req
	pr.mu.Unlock()

	log.Printf("[PlanRefresherService] Published new plan (%d subjects)", len(result.Subjects))
	return true, nil
}

// Current returns the last published plan, or false before the first build.
func (pr *PlanRefresherService) Current() (*models.PlanResult, bool) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return pr.current, pr.current != nil
}

func (pr *PlanRefresherService) loadInput() (models.PlanRequest, error) {
	if pr.inputPath == "" {
		return pr.plannerService.DefaultRequest(), nil
	}
	req, err := util.ReadPlanRequest(pr.inputPath)
	if err != nil {
		return models.PlanRequest{}, fmt.Errorf("failed to load plan input: %w", err)
	}
	return *req, nil
}
