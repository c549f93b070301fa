package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PlanRoutes is the handler set served by the router.
type PlanRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	CreatePlan(w http.ResponseWriter, r *http.Request)
	CreatePlanText(w http.ResponseWriter, r *http.Request)
	CreatePlanChart(w http.ResponseWriter, r *http.Request)
	GetCurrentPlan(w http.ResponseWriter, r *http.Request)
	GetDayTimetable(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	planHandler PlanRoutes
	router      *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	planHandler PlanRoutes,
	router *mux.Router) *Router {
	return &Router{
		planHandler: planHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.planHandler.Ping).Methods("GET")

	// body: {"subjects", "weak_areas", "prerequisites", "daily_hours"}
	r.router.HandleFunc("/v1/plan", r.planHandler.CreatePlan).Methods("POST")
	r.router.HandleFunc("/v1/plan/text", r.planHandler.CreatePlanText).Methods("POST")
	r.router.HandleFunc("/v1/plan/chart", r.planHandler.CreatePlanChart).Methods("POST")

	r.router.HandleFunc("/v1/plan/current", r.planHandler.GetCurrentPlan).Methods("GET")
	r.router.HandleFunc("/v1/plan/day/{day}", r.planHandler.GetDayTimetable).Methods("GET")
}
