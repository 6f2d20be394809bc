package server

import (
	"net/http"

	"github.com/lmoretti/gara-planner/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /plans/create", h.CreatePlan)
	mux.HandleFunc("GET /plans/get", h.GetPlan)
	mux.HandleFunc("GET /plans/list", h.ListPlans)
	mux.HandleFunc("GET /adjustments/get", h.GetAdjustments)
	mux.HandleFunc("POST /adjustments/setFactor", h.SetFactor)
	mux.HandleFunc("POST /adjustments/addPeriod", h.AddPeriod)
	mux.HandleFunc("POST /adjustments/removePeriod", h.RemovePeriod)
	mux.HandleFunc("GET /adjustments/summary", h.GetReport)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
