package catalog

import (
	"net/http"

	"detailbook/internal/api"
)

func List(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"services": All()})
}
