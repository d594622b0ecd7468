package handlers

import (
	"net/http"
)

// Health reports liveness. It deliberately touches no dependency: a healthy
// process with an unreachable registry still answers ok.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":  "ok",
		"service": "addisland-locator",
	}
	writeJSON(w, r, http.StatusOK, res)
}
