package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/orcamento-api/internal/budget"
	"github.com/noah-isme/orcamento-api/internal/common"
)

// Handler exposes the catalog endpoints. Instantiation appends a
// pre-filled line item to the budget session.
type Handler struct {
	Svc    *Service
	Budget *budget.Service
}

// List handles GET /api/v1/catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.List()})
}

// Add handles POST /api/v1/catalog.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var params AddParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid catalog payload", nil)
		return
	}
	entry, err := h.Svc.Add(r.Context(), params)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": entry})
}

// Delete handles DELETE /api/v1/catalog/{id}. Unknown ids are a silent
// no-op.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	removed := h.Svc.Remove(r.Context(), chi.URLParam(r, "id"))
	if !removed {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"removed": true}})
}

// Instantiate handles POST /api/v1/catalog/{id}/instantiate: a new line
// item pre-filled from the entry is appended to the budget session.
func (h *Handler) Instantiate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.Svc.Get(chi.URLParam(r, "id"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	item, totals := h.Budget.AppendItem(entry.Name, entry.Price, entry.ImageReference)
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"item": item, "totals": totals},
	})
}
