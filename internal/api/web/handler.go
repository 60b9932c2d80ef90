// Package web serves the landing page and the HTTP document API used by it.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/model"
	"github.com/dtroode/studyflow-waitlist/internal/waitlist"
)

const maxBodyBytes = 64 << 10

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// DocumentService defines the document operations exposed over HTTP.
type DocumentService interface {
	Append(ctx context.Context, collection string, fields model.Fields) (model.Document, error)
	Health(ctx context.Context) error
}

// FormSettings configures the browser waitlist form.
type FormSettings struct {
	Collection        string
	Source            string
	SuccessResetDelay time.Duration
	ErrorResetDelay   time.Duration
}

type formView struct {
	Endpoint             string
	Source               string
	LabelJoin            string
	LabelJoining         string
	MessageSuccess       string
	MessageInvalidEmail  string
	MessageRemoteFailure string
	SuccessResetMillis   int64
	ErrorResetMillis     int64
}

type pageData struct {
	Content Content
	Form    formView
	Year    int
}

type appendRequest struct {
	Fields map[string]any `json:"fields"`
}

type appendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the landing page, static assets and the document API.
type Handler struct {
	documents DocumentService
	content   Content
	form      formView
	page      *template.Template
	static    fs.FS
	metrics   http.Handler
	logger    *logger.Logger
	now       func() time.Time
}

// NewHandler creates a Handler. metrics may be nil, in which case /metrics
// is not served.
func NewHandler(
	documents DocumentService,
	content Content,
	form FormSettings,
	metrics http.Handler,
	logger *logger.Logger,
) (*Handler, error) {
	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing template: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &Handler{
		documents: documents,
		content:   content,
		form: formView{
			Endpoint:             "/api/collections/" + form.Collection + "/documents",
			Source:               form.Source,
			LabelJoin:            waitlist.LabelJoin,
			LabelJoining:         waitlist.LabelJoining,
			MessageSuccess:       waitlist.MessageSuccess,
			MessageInvalidEmail:  waitlist.MessageInvalidEmail,
			MessageRemoteFailure: waitlist.MessageRemoteFailure,
			SuccessResetMillis:   form.SuccessResetDelay.Milliseconds(),
			ErrorResetMillis:     form.ErrorResetDelay.Milliseconds(),
		},
		page:    page,
		static:  static,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Routes returns the HTTP handler with all routes and middleware.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newRequestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.landing)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(h.static)))
	r.Post("/api/collections/{collection}/documents", h.appendDocument)
	r.Get("/healthz", h.health)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	return r
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Content: h.content,
		Form:    h.form,
		Year:    h.now().Year(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error("Web handler: failed to render landing page", "error", err.Error())
	}
}

func (h *Handler) appendDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req appendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Fields == nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "fields are required"})
		return
	}

	doc, err := h.documents.Append(r.Context(), collection, model.DecodeFields(req.Fields))
	if err != nil {
		if errors.Is(err, model.ErrInvalidCollection) || errors.Is(err, model.ErrInvalidFields) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Web handler: append failed",
			"collection", collection,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err.Error())
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	h.writeJSON(w, http.StatusCreated, appendResponse{ID: doc.ID.String()})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.documents.Health(r.Context()); err != nil {
		h.logger.Warn("Web handler: health check failed", "error", err.Error())
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Web handler: failed to encode response", "error", err.Error())
	}
}
