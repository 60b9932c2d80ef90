package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/studyflow-waitlist/internal/mocks"
	"github.com/dtroode/studyflow-waitlist/internal/model"
	"github.com/dtroode/studyflow-waitlist/internal/testutil"
	"github.com/dtroode/studyflow-waitlist/internal/waitlist"
)

var testForm = FormSettings{
	Collection:        "waitlist",
	Source:            "prelaunch-website",
	SuccessResetDelay: 5 * time.Second,
	ErrorResetDelay:   3 * time.Second,
}

func newTestHandler(t *testing.T, svc DocumentService, metrics http.Handler) http.Handler {
	t.Helper()

	content, err := DefaultContent()
	require.NoError(t, err)

	h, err := NewHandler(svc, content, testForm, metrics, testutil.MakeNoopLogger())
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }

	return h.Routes()
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Landing(t *testing.T) {
	h := newTestHandler(t, mocks.NewDocumentService(t), nil)

	rec := serve(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<h1 class=\"hero-title\">StudyFlow</h1>")
	assert.Contains(t, body, "Your Study Superpowers")
	assert.Contains(t, body, "Pomodoro Focus")
	assert.Contains(t, body, "/static/screenshots/set-goals.svg")
	assert.Contains(t, body, `data-endpoint="/api/collections/waitlist/documents"`)
	assert.Contains(t, body, `data-success-reset-ms="5000"`)
	assert.Contains(t, body, `data-error-reset-ms="3000"`)
	assert.Contains(t, body, ">"+waitlist.LabelJoin+"</button>")
	assert.Contains(t, body, "&copy; 2026 StudyFlow.")
}

func TestHandler_Static(t *testing.T) {
	h := newTestHandler(t, mocks.NewDocumentService(t), nil)

	rec := serve(h, http.MethodGet, "/static/waitlist.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "$sentinel: 'serverTimestamp'")

	rec = serve(h, http.MethodGet, "/static/missing.js", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AppendDocument(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		target    string
		body      string
		mockSetup func(*mocks.DocumentService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "created",
			target: "/api/collections/waitlist/documents",
			body:   `{"fields":{"email":"user@example.com","joinedAt":{"$sentinel":"serverTimestamp"},"source":"prelaunch-website","status":"pending"}}`,
			mockSetup: func(svc *mocks.DocumentService) {
				svc.On("Append", mock.Anything, "waitlist", model.Fields{
					"email":    "user@example.com",
					"joinedAt": model.ServerTimestamp,
					"source":   "prelaunch-website",
					"status":   "pending",
				}).Return(model.Document{ID: id, Collection: "waitlist"}, nil).Once()
			},
			wantCode: http.StatusCreated,
			wantBody: fmt.Sprintf(`{"id":%q}`, id.String()),
		},
		{
			name:      "malformed json",
			target:    "/api/collections/waitlist/documents",
			body:      `{"fields":`,
			mockSetup: func(*mocks.DocumentService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"invalid JSON body"}`,
		},
		{
			name:      "missing fields",
			target:    "/api/collections/waitlist/documents",
			body:      `{}`,
			mockSetup: func(*mocks.DocumentService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"fields are required"}`,
		},
		{
			name:   "invalid collection",
			target: "/api/collections/Wait_List/documents",
			body:   `{"fields":{"email":"user@example.com"}}`,
			mockSetup: func(svc *mocks.DocumentService) {
				svc.On("Append", mock.Anything, "Wait_List", mock.Anything).
					Return(model.Document{}, fmt.Errorf("%w: %q", model.ErrInvalidCollection, "Wait_List")).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid collection name: \"Wait_List\""}`,
		},
		{
			name:   "store failure",
			target: "/api/collections/waitlist/documents",
			body:   `{"fields":{"email":"user@example.com"}}`,
			mockSetup: func(svc *mocks.DocumentService) {
				svc.On("Append", mock.Anything, "waitlist", mock.Anything).
					Return(model.Document{}, errors.New("failed to create document: connection reset")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewDocumentService(t)
			tt.mockSetup(svc)

			rec := serve(newTestHandler(t, svc, nil), http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_AppendDocument_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, mocks.NewDocumentService(t), nil)

	rec := serve(h, http.MethodGet, "/api/collections/waitlist/documents", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewDocumentService(t)
		svc.On("Health", mock.Anything).Return(nil).Once()

		rec := serve(newTestHandler(t, svc, nil), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("unavailable", func(t *testing.T) {
		svc := mocks.NewDocumentService(t)
		svc.On("Health", mock.Anything).Return(errors.New("failed to ping document store")).Once()

		rec := serve(newTestHandler(t, svc, nil), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_Metrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "documents_appended_total 1\n")
	})

	rec := serve(newTestHandler(t, mocks.NewDocumentService(t), metrics), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "documents_appended_total")

	rec = serve(newTestHandler(t, mocks.NewDocumentService(t), nil), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RecoversFromPanic(t *testing.T) {
	svc := mocks.NewDocumentService(t)
	svc.On("Health", mock.Anything).Run(func(mock.Arguments) { panic("boom") }).Return(nil).Once()

	rec := serve(newTestHandler(t, svc, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
