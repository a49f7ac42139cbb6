package document_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/budget"
	"github.com/noah-isme/orcamento-api/internal/document"
)

type captureSink struct {
	docs []document.Document
	err  error
}

func (s *captureSink) Present(doc document.Document) error {
	if s.err != nil {
		return s.err
	}
	s.docs = append(s.docs, doc)
	return nil
}

func newDocumentRouter(sink document.Sink) (http.Handler, *budget.Service) {
	svc := budget.NewService(time.Now)
	h := &document.Handler{Svc: svc, Sink: sink}
	r := chi.NewRouter()
	r.Post("/api/v1/budget/print", h.Print)
	r.Get("/api/v1/budget/document.pdf", h.PDF)
	r.Get("/api/v1/budget/document.html", h.HTML)
	return r, svc
}

func TestPrintHandsDocumentToSink(t *testing.T) {
	sink := &captureSink{}
	router, svc := newDocumentRouter(sink)
	svc.UpdateClient(budget.ClientPatch{Name: ptr("Maria")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/budget/print", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sink.docs, 1)
	require.Equal(t, "PROPOSTA COMERCIAL - MARIA", sink.docs[0].Client.Heading)

	var resp struct {
		Data document.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sink.docs[0].Header.Number, resp.Data.Header.Number)
}

func TestPrintReportsSinkFailure(t *testing.T) {
	router, _ := newDocumentRouter(&captureSink{err: errors.New("surface unavailable")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budget/print", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDocumentHTMLEndpoint(t *testing.T) {
	router, _ := newDocumentRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget/document.html", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.True(t, strings.Contains(rec.Body.String(), document.Title))
}

func TestDocumentPDFEndpoint(t *testing.T) {
	router, _ := newDocumentRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget/document.pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func ptr(s string) *string { return &s }
