package server

import (
	"net/http"

	"algolens/internal/gateway/handler"
	"algolens/internal/gateway/middleware"
)

func NewMux(
	pipelineHandler *handler.PipelineHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	algorithmHandler *handler.AlgorithmHandler,
	visualizationHandler *handler.VisualizationHandler,
	watchHandler *handler.WatchHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Pipeline
	mux.HandleFunc("POST /api/algorithm/detect", pipelineHandler.HandleDetect)
	mux.HandleFunc("POST /api/execute", pipelineHandler.HandleExecute)

	// Users
	mux.HandleFunc("POST /api/users", userHandler.HandleCreate)
	mux.HandleFunc("GET /api/users", userHandler.HandleList)
	mux.HandleFunc("GET /api/users/{id}", userHandler.HandleGet)
	mux.HandleFunc("PUT /api/users/{id}", userHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.HandleDelete)

	// Projects
	mux.HandleFunc("POST /api/projects", projectHandler.HandleCreate)
	mux.HandleFunc("GET /api/projects", projectHandler.HandleList)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.HandleGet)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.HandleDelete)

	// Algorithms
	mux.HandleFunc("POST /api/algorithms", algorithmHandler.HandleCreate)
	mux.HandleFunc("GET /api/algorithms", algorithmHandler.HandleList)
	mux.HandleFunc("GET /api/algorithms/{id}", algorithmHandler.HandleGet)
	mux.HandleFunc("PUT /api/algorithms/{id}", algorithmHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/algorithms/{id}", algorithmHandler.HandleDelete)

	// Visualizations
	mux.HandleFunc("POST /api/visualizations", visualizationHandler.HandleCreate)
	mux.HandleFunc("GET /api/visualizations", visualizationHandler.HandleList)
	mux.HandleFunc("GET /api/visualizations/{id}", visualizationHandler.HandleGet)
	mux.HandleFunc("DELETE /api/visualizations/{id}", visualizationHandler.HandleDelete)
	mux.HandleFunc("GET /api/visualizations/{id}/frames/{step}", visualizationHandler.HandleFrame)
	mux.HandleFunc("POST /api/visualizations/{id}/cursor", visualizationHandler.HandleCursor)

	// Watch
	mux.HandleFunc("GET /api/visualizations/watch", watchHandler.HandleWatchWS)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Middleware
	return middleware.CORS(mux)
}
