package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rl1809/warehouse-cluster/internal/core/service"
)

// HTTPHandler serves the node's operational endpoints. The inventory
// operations themselves are gRPC-only; this surface exists for probes.
type HTTPHandler struct {
	store *service.InventoryService
}

type healthResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

func NewHTTPHandler(store *service.InventoryService) *HTTPHandler {
	return &HTTPHandler{store: store}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Items:  h.store.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
