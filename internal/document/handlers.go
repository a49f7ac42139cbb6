package document

import (
	"net/http"

	"github.com/noah-isme/orcamento-api/internal/budget"
	"github.com/noah-isme/orcamento-api/internal/common"
)

// Sink accepts an assembled document for presentation and printing.
type Sink interface {
	Present(doc Document) error
}

// Handler exposes the document endpoints. Currency selects the
// formatting locale; empty falls back to BRL.
type Handler struct {
	Svc      *budget.Service
	Sink     Sink
	Currency string
}

// Print handles POST /api/v1/budget/print: the document is assembled
// from the current session, handed to the print sink and echoed back.
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	doc := h.assemble()
	if h.Sink != nil {
		if err := h.Sink.Present(doc); err != nil {
			common.JSONError(w, http.StatusBadGateway, "PRINT_SINK", "unable to present document", nil)
			return
		}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": doc})
}

// PDF handles GET /api/v1/budget/document.pdf.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	doc := h.assemble()
	pdf, err := RenderPDF(doc)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to render pdf", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+doc.Meta.Number+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// HTML handles GET /api/v1/budget/document.html, the display surface a
// browser prints from.
func (h *Handler) HTML(w http.ResponseWriter, r *http.Request) {
	doc := h.assemble()
	html, err := RenderHTML(doc)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to render html", nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}

func (h *Handler) assemble() Document {
	state, totals := h.Svc.Snapshot()
	return Assemble(state.Client, state.Company, state.Meta, state.Items, totals, h.Currency)
}
