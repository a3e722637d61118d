package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/simon/pkg/api/handlers"
	"github.com/cbodonnell/simon/pkg/api/middleware"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/state"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Port         int
	Repository   repositories.Repository
	StateManager state.StateManager
}

// NewAPIServer creates a new http.Server serving the read-only status API
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	return &APIServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", opts.Port),
			Handler: NewRouter(opts.Repository, opts.StateManager),
		},
	}
}

// NewRouter registers the status API routes.
func NewRouter(repository repositories.Repository, stateManager state.StateManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/highscore", handlers.HandleGetHighScore(repository)).Methods(http.MethodGet)
	r.HandleFunc("/game", handlers.HandleGetGame(stateManager)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.Use(middleware.NewCORSMiddleware(), middleware.NewMetricsMiddleware())
	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	log.Info("API server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
