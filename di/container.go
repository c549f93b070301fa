package di

import (
	"log"

	"github.com/gorilla/mux"

	"study-planner/api"
	"study-planner/api/plannerapi"
	"study-planner/config"
	"study-planner/server"
	"study-planner/server/handlers"
	services "study-planner/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                 config.Config
	PlannerService         *services.PlannerService
	PlanRefresherService   *services.PlanRefresherService
	PlanHandler            *handlers.PlanHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	StudyPlannerHttpServer *server.StudyPlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Config) *Container {
	log.Printf("initializing container - daily hours: %d, input: %q", cfg.DailyHours, cfg.InputPath)

	// Initialize service layer
	plannerService := services.NewPlannerService(cfg.DailyHours)
	planRefresherService := services.NewPlanRefresherService(plannerService, cfg.InputPath)

	// Initialize plan handler
	planHandler := handlers.NewPlanHandler(plannerService, planRefresherService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(planHandler, muxRouter)

	// initialize study planner server
	httpServer := server.NewStudyPlannerHttpServer(router, muxRouter, cfg.ServerAddress)

	return &Container{
		Config:                 cfg,
		PlannerService:         plannerService,
		PlanRefresherService:   planRefresherService,
		PlanHandler:            planHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		StudyPlannerHttpServer: httpServer,
	}
}

// NewPlannerAPI returns a client for a planner server at baseURL.
func NewPlannerAPI(baseURL string) plannerapi.PlannerAPI {
	log.Printf("Using planner server at %s", baseURL)
	return plannerapi.NewPlannerApiClient(api.NewHTTPClient(baseURL))
}
