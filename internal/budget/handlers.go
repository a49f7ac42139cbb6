package budget

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/orcamento-api/internal/common"
)

// Handler wires the budget session to HTTP. Every form-field binding of
// the UI maps onto one of these endpoints.
type Handler struct {
	Svc *Service
}

// Get returns the full session snapshot with its totals.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	state, totals := h.Svc.Snapshot()
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"client":  state.Client,
			"company": state.Company,
			"meta":    state.Meta,
			"items":   state.Items,
			"totals":  totals,
		},
	})
}

// Reset discards the session and starts a fresh budget.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	state := h.Svc.Reset()
	common.JSON(w, http.StatusOK, map[string]any{"data": state})
}

// Totals returns the recomputed totals only.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Totals()})
}

// PatchClient applies a partial client update.
func (h *Handler) PatchClient(w http.ResponseWriter, r *http.Request) {
	var patch ClientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid client payload", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.UpdateClient(patch)})
}

// PatchCompany applies a partial company update.
func (h *Handler) PatchCompany(w http.ResponseWriter, r *http.Request) {
	var patch CompanyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid company payload", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.UpdateCompany(patch)})
}

// PatchMeta applies a partial metadata update; discount and tax changes
// come back with recomputed totals.
func (h *Handler) PatchMeta(w http.ResponseWriter, r *http.Request) {
	var patch MetaPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid meta payload", nil)
		return
	}
	meta, totals := h.Svc.UpdateMeta(patch)
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"meta": meta, "totals": totals},
	})
}

// AddItem appends a blank line item.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, totals := h.Svc.AddItem()
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"item": item, "totals": totals},
	})
}

// UpdateItem mutates a single field of a line item. Unknown ids are a
// silent no-op answered with 204.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid item id", nil)
		return
	}
	var payload struct {
		Field Field           `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid item payload", nil)
		return
	}
	if !KnownField(payload.Field) {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown field", map[string]any{"field": payload.Field})
		return
	}
	item, totals, ok := h.Svc.UpdateItem(id, payload.Field, rawValue(payload.Value))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"item": item, "totals": totals},
	})
}

// DeleteItem removes a line item. Unknown ids are a silent no-op.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid item id", nil)
		return
	}
	totals, ok := h.Svc.RemoveItem(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"totals": totals},
	})
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// rawValue extracts the textual form of a JSON value, so numeric and
// string field values are coerced by the same store rules.
func rawValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
