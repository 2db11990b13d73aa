package handlers

import (
	"log"
	"net/http"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "fil-rouge API"}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		log.Printf("health check failed: %v", err)
		WriteError(w, "Database unreachable", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) Tables(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesDB()
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]int{"tables": count}, http.StatusOK)
}
