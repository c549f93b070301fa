package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"study-planner/config"
	"study-planner/models"
	"study-planner/presenter"
	services "study-planner/service"
	"study-planner/util"
)

const DAY_PATH_VAR = "day"

type PlanHandler struct {
	plannerService *services.PlannerService
	refresher      *services.PlanRefresherService
	plotChart      func(rows []models.ChartRow, w io.Writer) error
}

func NewPlanHandler(plannerService *services.PlannerService, refresher *services.PlanRefresherService) *PlanHandler {
	return &PlanHandler{
		plannerService: plannerService,
		refresher:      refresher,
		plotChart:      util.PlotWeeklyHours,
	}
}

// CreatePlan handles POST /v1/plan
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	result, ok := h.buildFromBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.transform(result))
}

// CreatePlanText handles POST /v1/plan/text
func (h *PlanHandler) CreatePlanText(w http.ResponseWriter, r *http.Request) {
	result, ok := h.buildFromBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(presenter.RenderPlan(result.Plan)))
}

// CreatePlanChart handles POST /v1/plan/chart
func (h *PlanHandler) CreatePlanChart(w http.ResponseWriter, r *http.Request) {
	result, ok := h.buildFromBody(w, r)
	if !ok {
		return
	}
	var page bytes.Buffer
	if err := h.plotChart(presenter.ToChartRows(result.Plan), &page); err != nil {
		log.Println("[PlanHandler] Error rendering chart:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// GetCurrentPlan handles GET /v1/plan/current
func (h *PlanHandler) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	result, ok := h.current(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.transform(result))
}

// GetDayTimetable handles GET /v1/plan/day/{day}
func (h *PlanHandler) GetDayTimetable(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseDayLabel(mux.Vars(r)[DAY_PATH_VAR])
	if err != nil {
		http.Error(w, "Unknown day", http.StatusNotFound)
		return
	}
	result, ok := h.current(w)
	if !ok {
		return
	}
	out, err := presenter.RenderDay(result.Plan, day)
	if err != nil {
		http.Error(w, "Unknown day", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

// Ping handles GET /ping
func (h *PlanHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *PlanHandler) buildFromBody(w http.ResponseWriter, r *http.Request) (*models.PlanResult, bool) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}

	result, err := h.plannerService.BuildPlan(req)
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			http.Error(w, cfgErr.Error(), http.StatusBadRequest)
			return nil, false
		}
		log.Println("[PlanHandler] Error building plan:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return result, true
}

func (h *PlanHandler) current(w http.ResponseWriter) (*models.PlanResult, bool) {
	result, ok := h.refresher.Current()
	if !ok {
		http.Error(w, "Plan not ready", http.StatusServiceUnavailable)
		return nil, false
	}
	return result, true
}

func (h *PlanHandler) transform(result *models.PlanResult) models.PlanResponse {
	days := make([]models.DayView, 0, len(result.Plan.Days))
	for _, d := range result.Plan.Days {
		tasks := make([]models.TaskView, 0, len(d.Tasks))
		for _, t := range d.Tasks {
			tasks = append(tasks, models.TaskView{
				Text:         t.String(),
				Subject:      t.Subject,
				Hours:        t.Hours,
				WeakArea:     t.WeakArea,
				Prerequisite: t.Prerequisite,
			})
		}
		days = append(days, models.DayView{Day: d.Day, Tasks: tasks})
	}
	return models.PlanResponse{
		DailyHours:   result.DailyHours,
		Days:         days,
		ChartRows:    presenter.ToChartRows(result.Plan),
		Schedule:     presenter.RenderPlan(result.Plan),
		WeakAreas:    presenter.RenderWeakAreas(result.WeakAreas),
		SubjectHours: presenter.TotalHoursBySubject(result.Plan),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("[PlanHandler] Error encoding response:", err)
	}
}
