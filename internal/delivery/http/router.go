package http

import (
	"net/http"

	"dental-navigator/internal/delivery/http/handler"
	"dental-navigator/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	sessionHandler        *handler.SessionHandler
	recommendationHandler *handler.RecommendationHandler
	matchJobHandler       *handler.MatchJobHandler
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	recommendationHandler *handler.RecommendationHandler,
	matchJobHandler *handler.MatchJobHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		sessionHandler:        sessionHandler,
		recommendationHandler: recommendationHandler,
		matchJobHandler:       matchJobHandler,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Intake sessions (anonymous, no auth)
	api.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/recommendations", r.recommendationHandler.GetRecommendations).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/match-jobs", r.sessionHandler.RequeueMatch).Methods(http.MethodPost)

	// Match job status polling
	api.HandleFunc("/match-jobs/{id}", r.matchJobHandler.GetMatchJob).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
