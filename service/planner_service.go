package services

import (
	"fmt"
	"log"

	"study-planner/config"
	"study-planner/models"
	"study-planner/planner"
	"study-planner/util"
)

type PlannerService struct {
	defaultDailyHours int
}

// NewPlannerService constructs a PlannerService. Requests without a daily
// budget use defaultDailyHours.
func NewPlannerService(defaultDailyHours int) *PlannerService {
	return &PlannerService{defaultDailyHours: defaultDailyHours}
}

// DefaultRequest returns the sample inputs the planner starts with.
func (ps *PlannerService) DefaultRequest() models.PlanRequest {
	return models.PlanRequest{
		Subjects:      config.DEFAULT_SUBJECTS,
		WeakAreas:     config.DEFAULT_WEAK_AREAS,
		Prerequisites: config.DEFAULT_PREREQUISITES,
		DailyHours:    ps.defaultDailyHours,
	}
}

// BuildPlan parses the raw inputs, validates them and allocates a fresh plan.
// Malformed lines are skipped by the parser; an out-of-range daily budget or a
// negative subject hour count is returned as a *config.ConfigurationError.
func (ps *PlannerService) BuildPlan(req models.PlanRequest) (*models.PlanResult, error) {
	dailyHours := req.DailyHours
	if dailyHours == 0 {
		dailyHours = ps.defaultDailyHours
	}
	if err := config.ValidateDailyHours(dailyHours); err != nil {
		return nil, err
	}

	subjects := util.ParseSubjects(req.Subjects)
	for _, s := range subjects {
		if err := config.ValidateSubjectHours(s.Name, s.WeeklyHours); err != nil {
			return nil, err
		}
	}
	weakAreas := util.ParseAnnotationMap(req.WeakAreas)
	prerequisites := util.ParseAnnotationMap(req.Prerequisites)

	plan, err := planner.Allocate(subjects, dailyHours, weakAreas, prerequisites)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate plan: %w", err)
	}
	log.Printf("[PlannerService] Built plan for %d subjects at %d hrs/day", len(subjects), dailyHours)

	return &models.PlanResult{
		DailyHours:    dailyHours,
		Subjects:      subjects,
		WeakAreas:     weakAreas,
		Prerequisites: prerequisites,
		Plan:          plan,
	}, nil
}
