// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/arlott/portfolio-api/internal/handlers"
	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/services/auth"
	"github.com/arlott/portfolio-api/internal/services/notify"
	"github.com/arlott/portfolio-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlers builds a handler set backed by a fresh in-memory database,
// with notifications disabled.
func newHandlers(t *testing.T) (*handlers.Handlers, *repository.Repository, *auth.Service) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	authService := auth.NewService(repo, testutil.AuthConfig())
	notifier := notify.NewService(&config.SMTPConfig{})
	return handlers.New(repo, authService, notifier), repo, authService
}

// call invokes a handler with a JSON request body and returns the recorder.
func call(t *testing.T, h echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := testutil.NewEcho()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	h, _, _ := newHandlers(t)

	rec := call(t, h.Health, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"status":"healthy"}`, rec.Body.String())
}

func TestSubmitContact(t *testing.T) {
	h, _, _ := newHandlers(t)

	rec := call(t, h.SubmitContact, http.MethodPost, "/api/contacts",
		`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["id"])
}

func TestSubmitContact_MissingField(t *testing.T) {
	h, _, _ := newHandlers(t)

	rec := call(t, h.SubmitContact, http.MethodPost, "/api/contacts",
		`{"name":"Ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "message required", body["error"])
}

func TestSubmitContact_TruncatesOverlongMessage(t *testing.T) {
	h, repo, _ := newHandlers(t)

	message := strings.Repeat("m", 5000)
	rec := call(t, h.SubmitContact, http.MethodPost, "/api/contacts",
		`{"name":"Ada","email":"ada@example.com","message":"`+message+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	rows, err := repo.ListContacts(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Message, 2000)
}

func TestListContacts(t *testing.T) {
	h, repo, _ := newHandlers(t)
	for range 3 {
		_, err := repo.CreateContact(t.Context(), "Ada", "ada@example.com", "Hello")
		require.NoError(t, err)
	}

	rec := call(t, h.ListContacts, http.MethodGet, "/api/contacts?limit=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 2)
}

func TestListContacts_EmptyRowsArray(t *testing.T) {
	h, _, _ := newHandlers(t)

	rec := call(t, h.ListContacts, http.MethodGet, "/api/contacts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"rows":[]}`, rec.Body.String())
}

func TestSubmitEvent(t *testing.T) {
	h, repo, _ := newHandlers(t)

	e := testutil.NewEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"eventName":"page_view","pagePath":"/projects","meta":{"source":"nav"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://example.com/")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rows, err := repo.ListEvents(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "page_view", rows[0].EventName)
	require.NotNil(t, rows[0].Meta)
	assert.JSONEq(t, `{"source":"nav"}`, *rows[0].Meta)
	require.NotNil(t, rows[0].UserAgent)
	assert.Equal(t, "Mozilla/5.0", *rows[0].UserAgent)
	require.NotNil(t, rows[0].ForwardedFor)
	assert.Equal(t, "203.0.113.7, 10.0.0.1", *rows[0].ForwardedFor)
	require.NotNil(t, rows[0].IPAddress)
	assert.Equal(t, "203.0.113.7", *rows[0].IPAddress)
}

func TestSubmitEvent_MissingName(t *testing.T) {
	h, _, _ := newHandlers(t)

	rec := call(t, h.SubmitEvent, http.MethodPost, "/api/events", `{"pagePath":"/"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "eventName required", body["error"])
}

func TestListEvents(t *testing.T) {
	h, repo, _ := newHandlers(t)
	for range 3 {
		_, err := repo.CreateEvent(t.Context(), repository.NewEvent{EventName: "page_view"})
		require.NoError(t, err)
	}

	rec := call(t, h.ListEvents, http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 3)
}
