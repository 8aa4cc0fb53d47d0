// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DataHandler handles dashboard data requests.
type DataHandler struct {
	deps Dependencies
}

// NewDataHandler creates a new data handler.
func NewDataHandler(deps Dependencies) *DataHandler {
	return &DataHandler{deps: deps}
}

// HandleData handles GET /api/data requests. The payload carries one
// bundle per dataset kind; each bundle is either a full set of summaries
// or a single error marker, so the response is always 200 with
// well-formed JSON even when a dataset is unavailable.
func (h *DataHandler) HandleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Dashboard(r.Context()))
}
