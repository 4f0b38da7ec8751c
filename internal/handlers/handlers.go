package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ourspace/internal/auth"
	"ourspace/internal/middleware"
	"ourspace/internal/service"
	"ourspace/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	svc       *service.Service
	gate      auth.Gate
	templates *template.Template
	logger    *slog.Logger
}

// New creates a new Handlers instance. A nil logger uses slog.Default.
func New(svc *service.Service, gate auth.Gate, tmpl *template.Template, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		svc:       svc,
		gate:      gate,
		templates: tmpl,
		logger:    logger,
	}
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

func writePlain(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

// respondError sends a plain-text error response.
func respondError(w http.ResponseWriter, code int, message string) {
	writePlain(w, code, message)
}

// respondText sends a plain-text 200 response.
func respondText(w http.ResponseWriter, message string) {
	writePlain(w, http.StatusOK, message)
}

func (h *Handlers) respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "internal server error",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
	)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondServiceError maps an error from form parsing or the service layer
// to a response.
func (h *Handlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *MissingFieldError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errInvalidForm):
		respondError(w, http.StatusBadRequest, "invalid form data")
	case errors.As(err, &missing):
		respondError(w, http.StatusBadRequest, missing.Error())
	case errors.Is(err, service.ErrInvalid):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondServerError(w, r, err)
	}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.respondServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// redirect sends a 302 like the browser-facing pages expect after a
// state change.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusFound)
}
